package controllers

import (
	"net/http/httptest"
	"testing"

	"pintureria-backend/middlewares"
	"pintureria-backend/models"

	"github.com/gofiber/fiber/v2"
)

func statusFor(t *testing.T, err error) int {
	t.Helper()
	app := fiber.New(fiber.Config{ErrorHandler: middlewares.ErrorHandler})
	app.Get("/probe", func(c *fiber.Ctx) error {
		return coreErrorResponse(c, err)
	})
	resp, reqErr := app.Test(httptest.NewRequest("GET", "/probe", nil))
	if reqErr != nil {
		t.Fatalf("app.Test: %v", reqErr)
	}
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestCoreErrorResponseStatusMapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		expected int
	}{
		{"validation", models.NewValidationError("branch_id is required"), fiber.StatusBadRequest},
		{"payment mismatch", &models.PaymentMismatchError{ExpectedTotal: 112, SubmittedSum: 100}, fiber.StatusBadRequest},
		{"branch not found", models.ErrBranchNotFound, fiber.StatusNotFound},
		{"customer not found", models.ErrCustomerNotFound, fiber.StatusNotFound},
		{"product not found", models.ErrProductNotFound, fiber.StatusNotFound},
		{"invoice not found", models.ErrInvoiceNotFound, fiber.StatusNotFound},
		{"quotation not found", models.ErrQuotationNotFound, fiber.StatusNotFound},
		{"insufficient stock", &models.InsufficientStockError{ProductID: "p1", Requested: 5, Available: 3}, fiber.StatusConflict},
		{"stock record not found", models.ErrStockRecordNotFound, fiber.StatusConflict},
		{"already voided", models.ErrAlreadyVoided, fiber.StatusConflict},
		{"already converted", models.ErrAlreadyConverted, fiber.StatusConflict},
		{"series unavailable", models.ErrSeriesUnavailable, fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := statusFor(t, tc.err); got != tc.expected {
			t.Fatalf("%s: status = %d, want %d", tc.name, got, tc.expected)
		}
	}
}
