package models

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	QuotationStatusOpen      = "open"
	QuotationStatusConverted = "converted"
)

// Quotation prices an order without touching stock or consuming a correlative.
// Lines are kept as an immutable JSON snapshot; conversion replays them through
// CreateInvoice so all stock and numbering rules apply at conversion time.
type Quotation struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	BranchId     uint            `json:"branch_id" gorm:"not null;index"`
	CId          uint            `json:"-"`
	Customer     Customer        `json:"customer" gorm:"foreignKey:CId;references:Id"`
	UserId       string          `json:"user_id"`
	Snapshot     datatypes.JSON  `json:"line_items" gorm:"type:jsonb"`
	Subtotal     float64         `json:"subtotal" gorm:"type:numeric(12,2)"`
	Discount     float64         `json:"discount" gorm:"type:numeric(12,2)"`
	Tax          float64         `json:"tax" gorm:"type:numeric(12,2)"`
	Total        float64         `json:"total" gorm:"type:numeric(12,2)"`
	Status       string          `json:"status" gorm:"size:10;not null;default:open"`
	InvoiceID    *uint           `json:"invoice_id"`
	Observations string          `json:"observations"`
	CreatedAt    time.Time       `json:"created_at"`
}

type CreateQuotationInput struct {
	BranchId      uint
	CustomerId    uint
	IssuingUserId string
	LineItems     []LineItemInput
	Discount      float64
	Observations  string
}

// CreateQuotation validates references and prices the lines with the same
// arithmetic as invoicing. No stock check: availability is only decided when
// the quotation converts.
func CreateQuotation(db *gorm.DB, in CreateQuotationInput) (*Quotation, error) {
	if in.BranchId == 0 || in.CustomerId == 0 {
		return nil, NewValidationError("branch_id and customer_id are required")
	}
	if len(in.LineItems) == 0 {
		return nil, NewValidationError("at least one line item is required")
	}

	var quotation Quotation
	err := db.Transaction(func(tx *gorm.DB) error {
		var customer Customer
		if err := tx.First(&customer, "id = ?", in.CustomerId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCustomerNotFound
			}
			return err
		}
		if err := tx.First(&Branch{}, "id = ?", in.BranchId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBranchNotFound
			}
			return err
		}

		var runningSubtotal float64
		for i, li := range in.LineItems {
			if li.Quantity <= 0 {
				return NewValidationError("line item %d: quantity must be positive", i)
			}
			var product Product
			if err := tx.First(&product, "id = ?", li.ProductId).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrProductNotFound
				}
				return err
			}
			unitPrice := li.UnitPrice
			if unitPrice <= 0 {
				unitPrice = product.UnitPrice
				in.LineItems[i].UnitPrice = unitPrice
			}
			runningSubtotal += li.Quantity * unitPrice
		}

		snapshot, err := json.Marshal(in.LineItems)
		if err != nil {
			return err
		}
		totals := ComputeTotals(runningSubtotal, in.Discount)
		quotation = Quotation{
			BranchId:     in.BranchId,
			CId:          customer.Id,
			UserId:       in.IssuingUserId,
			Snapshot:     datatypes.JSON(snapshot),
			Subtotal:     totals.Subtotal,
			Discount:     totals.Discount,
			Tax:          totals.Tax,
			Total:        totals.Total,
			Status:       QuotationStatusOpen,
			Observations: in.Observations,
		}
		if err := tx.Omit(clause.Associations).Create(&quotation).Error; err != nil {
			return err
		}
		quotation.Customer = customer
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &quotation, nil
}

// ConvertQuotation turns an open quotation into an invoice through CreateInvoice.
// The conversion marker and the invoice commit together; a quotation converts
// at most once.
func ConvertQuotation(db *gorm.DB, quotationId uint, userId string, payments []PaymentInput) (*Invoice, error) {
	var invoice *Invoice
	err := db.Transaction(func(tx *gorm.DB) error {
		var quotation Quotation
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&quotation, "id = ?", quotationId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrQuotationNotFound
			}
			return err
		}
		if quotation.Status == QuotationStatusConverted {
			return ErrAlreadyConverted
		}

		var lines []LineItemInput
		if err := json.Unmarshal(quotation.Snapshot, &lines); err != nil {
			return err
		}

		inv, err := CreateInvoice(tx, CreateInvoiceInput{
			BranchId:      quotation.BranchId,
			CustomerId:    quotation.CId,
			IssuingUserId: userId,
			LineItems:     lines,
			Payments:      payments,
			Discount:      quotation.Discount,
			Observations:  quotation.Observations,
		})
		if err != nil {
			return err
		}
		invoice = inv

		return tx.Model(&Quotation{}).Where("id = ?", quotation.ID).
			Updates(map[string]any{
				"status":     QuotationStatusConverted,
				"invoice_id": inv.ID,
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return invoice, nil
}
