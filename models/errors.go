package models

import (
	"errors"
	"fmt"
)

var (
	ErrBranchNotFound      = errors.New("branch not found")
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrProductNotFound     = errors.New("product not found")
	ErrInvoiceNotFound     = errors.New("invoice not found")
	ErrQuotationNotFound   = errors.New("quotation not found")
	ErrStockRecordNotFound = errors.New("no stock record for product at this branch/unit")
	ErrAlreadyVoided       = errors.New("invoice is already voided")
	ErrAlreadyConverted    = errors.New("quotation was already converted")
	ErrSeriesUnavailable   = errors.New("invoice series could not be resolved")
)

// ValidationError marks malformed or missing input on a core operation.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func NewValidationError(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// InsufficientStockError carries the shortfall so clients can adjust quantity.
type InsufficientStockError struct {
	ProductID string
	Requested float64
	Available float64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s: requested %.2f, available %.2f",
		e.ProductID, e.Requested, e.Available)
}

func (e *InsufficientStockError) Shortfall() float64 { return e.Requested - e.Available }

// PaymentMismatchError carries both sides of the failed comparison.
type PaymentMismatchError struct {
	ExpectedTotal float64
	SubmittedSum  float64
}

func (e *PaymentMismatchError) Error() string {
	return fmt.Sprintf("payments sum %.2f does not match invoice total %.2f",
		e.SubmittedSum, e.ExpectedTotal)
}
