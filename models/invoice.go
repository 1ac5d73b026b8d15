package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"pintureria-backend/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TaxRate is the fixed sales tax applied after the invoice-level discount.
const TaxRate = 0.12

// PaymentTolerance is the rounding slack allowed between the payments sum and
// the invoice total, in currency units.
const PaymentTolerance = 0.01

const (
	InvoiceStatusActive = "active"
	InvoiceStatusVoided = "voided"
)

// Invoice is one committed sale. Created only by CreateInvoice; the only later
// mutation is the active -> voided transition applied by VoidInvoice.
type Invoice struct {
	ID           uint     `json:"id" gorm:"primaryKey"`
	Number       string   `json:"number" gorm:"unique;not null"`
	SeriesLetter string   `json:"series_letter" gorm:"size:1;not null"`
	Correlative  int64    `json:"correlative" gorm:"not null"`
	BranchId     uint     `json:"branch_id" gorm:"not null;index"`
	Branch       Branch   `json:"-" gorm:"foreignKey:BranchId;references:Id"`
	CId          uint     `json:"-"`
	Customer     Customer `json:"customer" gorm:"foreignKey:CId;references:Id"`
	UserId       string   `json:"user_id"`
	User         User     `json:"-" gorm:"foreignKey:UserId;references:Id"`

	Items    []InvoiceLineItem `json:"items" gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
	Payments []PaymentRecord   `json:"payments" gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`

	Subtotal     float64 `json:"subtotal" gorm:"type:numeric(12,2)"`
	Discount     float64 `json:"discount" gorm:"type:numeric(12,2)"`
	Tax          float64 `json:"tax" gorm:"type:numeric(12,2)"`
	Total        float64 `json:"total" gorm:"type:numeric(12,2)"`
	Observations string  `json:"observations"`

	Status     string     `json:"status" gorm:"size:10;not null;default:active"`
	VoidedAt   *time.Time `json:"voided_at"`
	VoidReason string     `json:"void_reason"`

	CreatedAt time.Time `json:"created_at"`
}

type InvoiceLineItem struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	InvoiceID   uint    `json:"-" gorm:"index"`
	ProductId   string  `json:"product_id" gorm:"not null;index"`
	Product     Product `json:"-" gorm:"foreignKey:ProductId;references:Id;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
	UomId       uint    `json:"uom_id" gorm:"not null"`
	Quantity    float64 `json:"quantity" gorm:"type:numeric(12,2)"`
	UnitPrice   float64 `json:"unit_price" gorm:"type:numeric(12,2)"`
	DiscountPct float64 `json:"discount_pct"`
	Subtotal    float64 `json:"subtotal" gorm:"type:numeric(12,2)"`
}

type PaymentRecord struct {
	ID        uint          `json:"id" gorm:"primaryKey"`
	InvoiceID uint          `json:"invoice_id" gorm:"index"`
	MethodId  uint          `json:"method_id" gorm:"not null"`
	Method    PaymentMethod `json:"method" gorm:"foreignKey:MethodId;references:Id"`
	Amount    float64       `json:"amount" gorm:"type:numeric(12,2)"`
	Reference string        `json:"reference"`
	CreatedAt time.Time     `json:"created_at"`
}

type LineItemInput struct {
	ProductId   string  `json:"product_id" validate:"required"`
	UomId       uint    `json:"uom_id" validate:"required"`
	Quantity    float64 `json:"quantity" validate:"required,gt=0"`
	UnitPrice   float64 `json:"unit_price" validate:"omitempty,gte=0"`
	DiscountPct float64 `json:"discount_pct" validate:"omitempty,gte=0,lte=100"`
}

type PaymentInput struct {
	MethodId  uint    `json:"method_id" validate:"required"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Reference string  `json:"reference"`
}

type CreateInvoiceInput struct {
	BranchId      uint            `json:"branch_id"`
	CustomerId    uint            `json:"customer_id"`
	IssuingUserId string          `json:"-"`
	LineItems     []LineItemInput `json:"line_items"`
	Payments      []PaymentInput  `json:"payments"`
	Discount      float64         `json:"discount"`
	Observations  string          `json:"observations"`
}

// FormatInvoiceNumber renders the human-readable number, e.g. A00000123.
func FormatInvoiceNumber(letter string, correlative int64) string {
	return fmt.Sprintf("%s%08d", letter, correlative)
}

/// LineSubtotal is the amount stored on a line row: quantity x price with the
// line-level discount applied, rounded to currency precision.
func LineSubtotal(quantity, unitPrice, discountPct float64) float64 {
	return utils.Round2(utils.ApplyDiscount(quantity*unitPrice, discountPct))
}

type InvoiceTotals struct {
	Subtotal float64
	Discount float64
	Tax      float64
	Total    float64
}

// ComputeTotals applies the invoice-level discount, then the fixed tax rate.
func ComputeTotals(subtotal, discount float64) InvoiceTotals {
	afterDiscount := subtotal - discount
	tax := utils.Round2(afterDiscount * TaxRate)
	return InvoiceTotals{
		Subtotal: utils.Round2(subtotal),
		Discount: utils.Round2(discount),
		Tax:      tax,
		Total:    utils.Round2(afterDiscount + tax),
	}
}

// CheckPayments verifies the submitted payments cover the total within
// PaymentTolerance. Comparison happens in cents to keep float noise out.
func CheckPayments(payments []PaymentInput, total float64) error {
	var sum float64
	for _, p := range payments {
		sum += p.Amount
	}
	sum = utils.Round2(sum)
	diffCents := utils.Cents(sum) - utils.Cents(total)
	if diffCents < 0 {
		diffCents = -diffCents
	}
	if diffCents > utils.Cents(PaymentTolerance) {
		return &PaymentMismatchError{ExpectedTotal: total, SubmittedSum: sum}
	}
	return nil
}

func validateCreateInput(in *CreateInvoiceInput) error {
	if in.BranchId == 0 {
		return NewValidationError("branch_id is required")
	}
	if in.CustomerId == 0 {
		return NewValidationError("customer_id is required")
	}
	if len(in.LineItems) == 0 {
		return NewValidationError("at least one line item is required")
	}
	for i, li := range in.LineItems {
		if li.ProductId == "" {
			return NewValidationError("line item %d: product_id is required", i)
		}
		if li.UomId == 0 {
			return NewValidationError("line item %d: uom_id is required", i)
		}
		if li.Quantity <= 0 {
			return NewValidationError("line item %d: quantity must be positive", i)
		}
		if li.DiscountPct < 0 || li.DiscountPct > 100 {
			return NewValidationError("line item %d: discount_pct out of range", i)
		}
	}
	if in.Discount < 0 {
		return NewValidationError("discount must not be negative")
	}
	return nil
}

// CreateInvoice runs the whole sale as one atomic unit: resolve references, lock
// and verify stock per line in submitted order, compute totals, allocate the next
// correlative, persist invoice + lines + payments, debit stock, advance the
// series. Any failure rolls everything back and the originating error is
// returned unchanged. Not idempotent: a retry consumes another correlative.
func CreateInvoice(db *gorm.DB, in CreateInvoiceInput) (*Invoice, error) {
	if err := validateCreateInput(&in); err != nil {
		return nil, err
	}

	var invoice Invoice
	err := db.Transaction(func(tx *gorm.DB) error {
		var customer Customer
		if err := tx.First(&customer, "id = ?", in.CustomerId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCustomerNotFound
			}
			return err
		}
		var branch Branch
		if err := tx.First(&branch, "id = ?", in.BranchId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBranchNotFound
			}
			return err
		}

		series, err := GetOrCreateSeriesForUpdate(tx, branch.Id, DefaultSeriesLetter)
		if err != nil {
			return err
		}

		// Per line, in submitted order: resolve product, lock the stock row,
		// verify availability. Locks are held to commit so the later debit
		// cannot oversell.
		var runningSubtotal float64
		lines := make([]InvoiceLineItem, 0, len(in.LineItems))
		stocks := make([]*StockRecord, 0, len(in.LineItems))
		for _, li := range in.LineItems {
			var product Product
			if err := tx.First(&product, "id = ?", li.ProductId).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrProductNotFound
				}
				return err
			}
			record, err := GetStockForUpdate(tx, branch.Id, product.Id, li.UomId)
			if err != nil {
				return err
			}
			if record.Available() < li.Quantity {
				return &InsufficientStockError{
					ProductID: product.Id,
					Requested: li.Quantity,
					Available: record.Available(),
				}
			}

			unitPrice := li.UnitPrice
			if unitPrice <= 0 {
				unitPrice = product.UnitPrice
			}
			// Header subtotal accumulates the undiscounted line amount; the
			// line row keeps its own discounted subtotal. Mirrors the source.
			runningSubtotal += li.Quantity * unitPrice

			lines = append(lines, InvoiceLineItem{
				ProductId:   product.Id,
				UomId:       li.UomId,
				Quantity:    li.Quantity,
				UnitPrice:   utils.Round2(unitPrice),
				DiscountPct: li.DiscountPct,
				Subtotal:    LineSubtotal(li.Quantity, unitPrice, li.DiscountPct),
			})
			stocks = append(stocks, record)
		}

		totals := ComputeTotals(runningSubtotal, in.Discount)

		if len(in.Payments) > 0 {
			for i, p := range in.Payments {
				if _, err := GetPaymentMethod(tx, p.MethodId); err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return NewValidationError("payment %d: unknown payment method %d", i, p.MethodId)
					}
					return err
				}
			}
			if err := CheckPayments(in.Payments, totals.Total); err != nil {
				return err
			}
		}

		next := series.NextCorrelative()
		invoice = Invoice{
			Number:       FormatInvoiceNumber(series.Letter, next),
			SeriesLetter: series.Letter,
			Correlative:  next,
			BranchId:     branch.Id,
			CId:          customer.Id,
			UserId:       in.IssuingUserId,
			Subtotal:     totals.Subtotal,
			Discount:     totals.Discount,
			Tax:          totals.Tax,
			Total:        totals.Total,
			Observations: in.Observations,
			Status:       InvoiceStatusActive,
		}
		if err := tx.Omit(clause.Associations).Create(&invoice).Error; err != nil {
			return err
		}

		for i := range lines {
			lines[i].InvoiceID = invoice.ID
			if err := tx.Omit(clause.Associations).Create(&lines[i]).Error; err != nil {
				return err
			}
		}
		for i, record := range stocks {
			if err := DebitStock(tx, record, lines[i].Quantity); err != nil {
				return err
			}
		}

		payments := make([]PaymentRecord, 0, len(in.Payments))
		for _, p := range in.Payments {
			payment := PaymentRecord{
				InvoiceID: invoice.ID,
				MethodId:  p.MethodId,
				Amount:    utils.Round2(p.Amount),
				Reference: p.Reference,
			}
			if err := tx.Omit(clause.Associations).Create(&payment).Error; err != nil {
				return err
			}
			payments = append(payments, payment)
		}

		if err := AdvanceSeries(tx, series); err != nil {
			return err
		}

		invoice.Items = lines
		invoice.Payments = payments
		invoice.Customer = customer
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

// VoidInvoice reverses a committed invoice: restores stock per line, flips the
// state to voided and zeroes the displayed total. Subtotal, discount and tax
// stay as originally recorded (stated business rule). Atomic: stock is never
// restored without the state flipping, and vice versa.
func VoidInvoice(db *gorm.DB, invoiceId uint, reason string) (*Invoice, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, NewValidationError("void reason is required")
	}

	var invoice Invoice
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&invoice, "id = ?", invoiceId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvoiceNotFound
			}
			return err
		}
		if invoice.Status == InvoiceStatusVoided {
			return ErrAlreadyVoided
		}
		if err := tx.Where("invoice_id = ?", invoice.ID).
			Order("id").Find(&invoice.Items).Error; err != nil {
			return err
		}

		for _, item := range invoice.Items {
			record, err := GetStockForUpdate(tx, invoice.BranchId, item.ProductId, item.UomId)
			if err != nil {
				return err
			}
			if err := CreditStock(tx, record, item.Quantity); err != nil {
				return err
			}
		}

		now := time.Now().UTC()
		updates := map[string]any{
			"status":      InvoiceStatusVoided,
			"voided_at":   &now,
			"void_reason": reason,
			"total":       0.0,
		}
		if err := tx.Model(&Invoice{}).Where("id = ?", invoice.ID).
			Updates(updates).Error; err != nil {
			return err
		}
		invoice.Status = InvoiceStatusVoided
		invoice.VoidedAt = &now
		invoice.VoidReason = reason
		invoice.Total = 0
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}
