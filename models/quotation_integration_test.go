package models_test

import (
	"errors"
	"testing"

	"pintureria-backend/models"
)

func TestQuotationLifecycle(t *testing.T) {
	db := testDB(t)
	f := seedSale(t, db, 10)

	q, err := models.CreateQuotation(db, models.CreateQuotationInput{
		BranchId:      f.branch.Id,
		CustomerId:    f.customer.Id,
		IssuingUserId: f.user.Id,
		LineItems: []models.LineItemInput{
			{ProductId: f.product.Id, UomId: f.uom.Id, Quantity: 3},
		},
	})
	if err != nil {
		t.Fatalf("create quotation: %v", err)
	}
	if q.Status != models.QuotationStatusOpen {
		t.Fatalf("status = %q, want open", q.Status)
	}
	if q.Subtotal != 300.00 || q.Tax != 36.00 || q.Total != 336.00 {
		t.Fatalf("totals = %.2f/%.2f/%.2f, want 300/36/336", q.Subtotal, q.Tax, q.Total)
	}

	// Quoting reserves nothing.
	if got := reloadStock(t, db, f.stock.Id); got.ActualStock != 10 {
		t.Fatalf("stock changed by quotation: %v", got.ActualStock)
	}

	inv, err := models.ConvertQuotation(db, q.ID, f.user.Id, nil)
	if err != nil {
		t.Fatalf("convert quotation: %v", err)
	}
	if inv.Total != 336.00 {
		t.Fatalf("invoice total = %v, want 336.00", inv.Total)
	}
	if got := reloadStock(t, db, f.stock.Id); got.ActualStock != 7 {
		t.Fatalf("stock after conversion = %v, want 7", got.ActualStock)
	}

	var reloaded models.Quotation
	if err := db.First(&reloaded, "id = ?", q.ID).Error; err != nil {
		t.Fatalf("reload quotation: %v", err)
	}
	if reloaded.Status != models.QuotationStatusConverted {
		t.Fatalf("status = %q, want converted", reloaded.Status)
	}
	if reloaded.InvoiceID == nil || *reloaded.InvoiceID != inv.ID {
		t.Fatalf("invoice link = %v, want %d", reloaded.InvoiceID, inv.ID)
	}

	if _, err := models.ConvertQuotation(db, q.ID, f.user.Id, nil); !errors.Is(err, models.ErrAlreadyConverted) {
		t.Fatalf("expected already converted, got %v", err)
	}
}

func TestConvertQuotationFailsWhenStockRanOut(t *testing.T) {
	db := testDB(t)
	f := seedSale(t, db, 5)

	q, err := models.CreateQuotation(db, models.CreateQuotationInput{
		BranchId:      f.branch.Id,
		CustomerId:    f.customer.Id,
		IssuingUserId: f.user.Id,
		LineItems: []models.LineItemInput{
			{ProductId: f.product.Id, UomId: f.uom.Id, Quantity: 5},
		},
	})
	if err != nil {
		t.Fatalf("create quotation: %v", err)
	}

	// Stock is sold off between quoting and converting.
	if _, err := models.CreateInvoice(db, f.input(3)); err != nil {
		t.Fatalf("intervening sale: %v", err)
	}

	_, err = models.ConvertQuotation(db, q.ID, f.user.Id, nil)
	var insufficient *models.InsufficientStockError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected insufficient stock on convert, got %v", err)
	}

	// The failed conversion leaves the quotation open for retry.
	var reloaded models.Quotation
	if err := db.First(&reloaded, "id = ?", q.ID).Error; err != nil {
		t.Fatalf("reload quotation: %v", err)
	}
	if reloaded.Status != models.QuotationStatusOpen {
		t.Fatalf("status = %q, want open", reloaded.Status)
	}
	if got := reloadStock(t, db, f.stock.Id); got.ActualStock != 2 {
		t.Fatalf("stock = %v, want 2", got.ActualStock)
	}
}
