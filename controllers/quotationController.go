package controllers

import (
	"strconv"

	"pintureria-backend/database"
	"pintureria-backend/middlewares"
	"pintureria-backend/models"
	"pintureria-backend/utils"

	"github.com/gofiber/fiber/v2"
)

type QuotationCreateDTO struct {
	BranchId     uint                   `json:"branch_id" validate:"required"`
	CustomerId   uint                   `json:"customer_id" validate:"required"`
	LineItems    []models.LineItemInput `json:"line_items" validate:"required,min=1,dive"`
	Discount     float64                `json:"discount" validate:"omitempty,gte=0"`
	Observations string                 `json:"observations"`
}

type QuotationConvertDTO struct {
	Payments []models.PaymentInput `json:"payments" validate:"omitempty,dive"`
}

// POST /api/quotation
func CreateQuotation(c *fiber.Ctx) error {
	var in QuotationCreateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	utils.NormalizeDTO(&in)

	userID, _ := c.Locals("userID").(string)

	quotation, err := models.CreateQuotation(database.DB, models.CreateQuotationInput{
		BranchId:      in.BranchId,
		CustomerId:    in.CustomerId,
		IssuingUserId: userID,
		LineItems:     in.LineItems,
		Discount:      in.Discount,
		Observations:  in.Observations,
	})
	if err != nil {
		return coreErrorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(quotation)
}

// GET /api/quotations
func GetQuotations(c *fiber.Ctx) error {
	query := database.DB.Model(&models.Quotation{}).Preload("Customer").Order("created_at DESC")
	if branchId := middlewares.BranchFromLocals(c); branchId > 0 {
		query = query.Where("branch_id = ?", branchId)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var quotations []models.Quotation
	if err := query.Find(&quotations).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not list quotations")
	}
	return c.JSON(fiber.Map{"quotations": quotations, "message": "success"})
}

// GET /api/quotation/:id
func GetQuotation(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid quotation id")
	}

	var quotation models.Quotation
	if err := database.DB.Preload("Customer").First(&quotation, "id = ?", id).Error; err != nil {
		return coreErrorResponse(c, models.ErrQuotationNotFound)
	}
	return c.JSON(quotation)
}

// POST /api/quotation/:id/convert
func ConvertQuotation(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid quotation id")
	}

	var in QuotationConvertDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	userID, _ := c.Locals("userID").(string)

	invoice, err := models.ConvertQuotation(database.DB, uint(id), userID, in.Payments)
	if err != nil {
		return coreErrorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}
