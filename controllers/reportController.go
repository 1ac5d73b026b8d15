package controllers

import (
	"fmt"
	"time"

	"pintureria-backend/database"
	"pintureria-backend/middlewares"
	"pintureria-backend/reports"
	"pintureria-backend/utils"

	"github.com/gofiber/fiber/v2"
)

func parseDateRange(c *fiber.Ctx) (reports.DateRange, error) {
	const layout = "2006-01-02"

	now := time.Now().UTC()
	from := now.AddDate(0, -1, 0)
	to := now.AddDate(0, 0, 1)

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(layout, raw)
		if err != nil {
			return reports.DateRange{}, fiber.NewError(fiber.StatusBadRequest, "invalid 'from' date, expected YYYY-MM-DD")
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse(layout, raw)
		if err != nil {
			return reports.DateRange{}, fiber.NewError(fiber.StatusBadRequest, "invalid 'to' date, expected YYYY-MM-DD")
		}
		// 'to' is inclusive at the API; the queries use an exclusive bound.
		to = parsed.AddDate(0, 0, 1)
	}
	if !from.Before(to) {
		return reports.DateRange{}, fiber.NewError(fiber.StatusBadRequest, "'from' must be before 'to'")
	}
	return reports.DateRange{From: from, To: to}, nil
}

// GET /api/reports/sales/products?from=&to=&branch_id=
func GetProductSalesReport(c *fiber.Ctx) error {
	r, err := parseDateRange(c)
	if err != nil {
		return err
	}
	branchId := middlewares.BranchFromLocals(c)

	report, err := reports.CachedSalesByProduct(database.DB, branchId, r)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not build report")
	}
	return c.JSON(report)
}

// GET /api/reports/sales/branches?from=&to=
func GetBranchSalesReport(c *fiber.Ctx) error {
	r, err := parseDateRange(c)
	if err != nil {
		return err
	}

	report, err := reports.CachedSalesByBranch(database.DB, r)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not build report")
	}
	return c.JSON(report)
}

// GET /api/reports/customers/top?from=&to=&limit=
func GetTopCustomersReport(c *fiber.Ctx) error {
	r, err := parseDateRange(c)
	if err != nil {
		return err
	}
	branchId := middlewares.BranchFromLocals(c)
	limit := utils.ParseIntDefault(c.Query("limit"), 10)

	rows, err := reports.CachedTopCustomers(database.DB, branchId, r, limit)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not build report")
	}
	return c.JSON(fiber.Map{"customers": rows, "message": "success"})
}

// GET /api/reports/sales/export?from=&to=&branch_id=
func ExportProductSalesReport(c *fiber.Ctx) error {
	r, err := parseDateRange(c)
	if err != nil {
		return err
	}
	branchId := middlewares.BranchFromLocals(c)

	report, err := reports.SalesByProduct(database.DB, branchId, r)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not build report")
	}
	blob, err := reports.ExportProductSalesExcel(report)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not render spreadsheet")
	}

	filename := fmt.Sprintf("sales_%s_%s.xlsx",
		r.From.Format("20060102"), r.To.AddDate(0, 0, -1).Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(blob)
}
