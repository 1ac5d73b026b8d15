package controllers

import (
	"errors"
	"strconv"

	"pintureria-backend/database"
	"pintureria-backend/middlewares"
	"pintureria-backend/models"
	"pintureria-backend/utils"

	"github.com/gofiber/fiber/v2"
)

type InvoiceCreateDTO struct {
	BranchId     uint                   `json:"branch_id" validate:"required"`
	CustomerId   uint                   `json:"customer_id" validate:"required"`
	LineItems    []models.LineItemInput `json:"line_items" validate:"required,min=1,dive"`
	Payments     []models.PaymentInput  `json:"payments" validate:"omitempty,dive"`
	Discount     float64                `json:"discount" validate:"omitempty,gte=0"`
	Observations string                 `json:"observations"`
}

type InvoiceVoidDTO struct {
	Reason string `json:"reason" validate:"required,min=1"`
}

// coreErrorResponse maps the invoicing core's error kinds onto the HTTP contract:
// 400 validation/payment mismatch, 404 missing references, 409 stock/void
// conflicts. Unknown errors bubble to the central handler as 500.
func coreErrorResponse(c *fiber.Ctx, err error) error {
	var validationErr *models.ValidationError
	var stockErr *models.InsufficientStockError
	var paymentErr *models.PaymentMismatchError

	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": validationErr.Msg})
	case errors.As(err, &paymentErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message":        "payments do not match invoice total",
			"expected_total": paymentErr.ExpectedTotal,
			"submitted_sum":  paymentErr.SubmittedSum,
		})
	case errors.Is(err, models.ErrBranchNotFound),
		errors.Is(err, models.ErrCustomerNotFound),
		errors.Is(err, models.ErrProductNotFound),
		errors.Is(err, models.ErrInvoiceNotFound),
		errors.Is(err, models.ErrQuotationNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
	case errors.As(err, &stockErr):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message":    "insufficient stock",
			"product_id": stockErr.ProductID,
			"requested":  stockErr.Requested,
			"available":  stockErr.Available,
			"shortfall":  stockErr.Shortfall(),
		})
	case errors.Is(err, models.ErrStockRecordNotFound):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": err.Error()})
	case errors.Is(err, models.ErrAlreadyVoided), errors.Is(err, models.ErrAlreadyConverted):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": err.Error()})
	case errors.Is(err, models.ErrSeriesUnavailable):
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return err
}

// POST /api/invoice
func CreateInvoice(c *fiber.Ctx) error {
	var in InvoiceCreateDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}
	utils.NormalizeDTO(&in)

	userID, _ := c.Locals("userID").(string)

	invoice, err := models.CreateInvoice(database.DB, models.CreateInvoiceInput{
		BranchId:      in.BranchId,
		CustomerId:    in.CustomerId,
		IssuingUserId: userID,
		LineItems:     in.LineItems,
		Payments:      in.Payments,
		Discount:      in.Discount,
		Observations:  in.Observations,
	})
	if err != nil {
		return coreErrorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// POST /api/invoice/:id/void
func VoidInvoice(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid invoice id")
	}

	var in InvoiceVoidDTO
	if err := middlewares.BindAndValidate(c, &in); err != nil {
		return err
	}

	invoice, err := models.VoidInvoice(database.DB, uint(id), in.Reason)
	if err != nil {
		return coreErrorResponse(c, err)
	}
	return c.JSON(invoice)
}

// GET /api/invoices?branch_id=&status=&limit=&offset=
func GetInvoices(c *fiber.Ctx) error {
	query := database.DB.Model(&models.Invoice{}).Preload("Customer").Order("created_at DESC")

	if branchId := middlewares.BranchFromLocals(c); branchId > 0 {
		query = query.Where("branch_id = ?", branchId)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	limit := utils.ParseIntDefault(c.Query("limit"), 100)
	if limit > 500 {
		limit = 500
	}
	offset := utils.ParseIntDefault(c.Query("offset"), 0)

	var invoices []models.Invoice
	if err := query.Limit(limit).Offset(offset).Find(&invoices).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not list invoices")
	}
	return c.JSON(fiber.Map{"invoices": invoices, "message": "success"})
}

// GET /api/invoice/:id
func GetInvoice(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid invoice id")
	}

	var invoice models.Invoice
	if err := database.DB.Preload("Customer").Preload("Items").Preload("Payments").Preload("Payments.Method").
		First(&invoice, "id = ?", id).Error; err != nil {
		return coreErrorResponse(c, models.ErrInvoiceNotFound)
	}
	return c.JSON(invoice)
}
