package models

import (
	"errors"
	"testing"
)

func TestFormatInvoiceNumber(t *testing.T) {
	cases := []struct {
		letter      string
		correlative int64
		expected    string
	}{
		{"A", 1, "A00000001"},
		{"A", 123, "A00000123"},
		{"B", 6, "B00000006"},
		{"A", 99999999, "A99999999"},
	}
	for _, tc := range cases {
		if got := FormatInvoiceNumber(tc.letter, tc.correlative); got != tc.expected {
			t.Fatalf("FormatInvoiceNumber(%q, %d) = %q, want %q", tc.letter, tc.correlative, got, tc.expected)
		}
	}
}

func TestComputeTotalsTwelvePercent(t *testing.T) {
	totals := ComputeTotals(1000.00, 0)
	if totals.Subtotal != 1000.00 {
		t.Fatalf("subtotal = %v, want 1000.00", totals.Subtotal)
	}
	if totals.Tax != 120.00 {
		t.Fatalf("tax = %v, want 120.00", totals.Tax)
	}
	if totals.Total != 1120.00 {
		t.Fatalf("total = %v, want 1120.00", totals.Total)
	}
}

func TestComputeTotalsWithDiscount(t *testing.T) {
	totals := ComputeTotals(100.00, 10.00)
	if totals.Tax != 10.80 {
		t.Fatalf("tax = %v, want 10.80", totals.Tax)
	}
	if totals.Total != 100.80 {
		t.Fatalf("total = %v, want 100.80", totals.Total)
	}
}

func TestComputeTotalsRounding(t *testing.T) {
	// 33.33 * 0.12 = 3.9996 -> 4.00
	totals := ComputeTotals(33.33, 0)
	if totals.Tax != 4.00 {
		t.Fatalf("tax = %v, want 4.00", totals.Tax)
	}
	if totals.Total != 37.33 {
		t.Fatalf("total = %v, want 37.33", totals.Total)
	}
}

func TestLineSubtotal(t *testing.T) {
	cases := []struct {
		qty, price, discount float64
		expected             float64
	}{
		{1, 100.00, 0, 100.00},
		{2, 50.25, 0, 100.50},
		{3, 10.00, 10, 27.00},
		{1, 99.99, 33.333, 66.66},
	}
	for _, tc := range cases {
		if got := LineSubtotal(tc.qty, tc.price, tc.discount); got != tc.expected {
			t.Fatalf("LineSubtotal(%v, %v, %v) = %v, want %v", tc.qty, tc.price, tc.discount, got, tc.expected)
		}
	}
}

func TestCheckPaymentsWithinTolerance(t *testing.T) {
	cases := []float64{112.00, 111.99, 112.01}
	for _, sum := range cases {
		err := CheckPayments([]PaymentInput{{MethodId: 1, Amount: sum}}, 112.00)
		if err != nil {
			t.Fatalf("payments summing %v against 112.00 should pass, got %v", sum, err)
		}
	}
}

func TestCheckPaymentsBeyondTolerance(t *testing.T) {
	cases := []float64{111.98, 112.02, 100.00, 0.0}
	for _, sum := range cases {
		err := CheckPayments([]PaymentInput{{MethodId: 1, Amount: sum}}, 112.00)
		var mismatch *PaymentMismatchError
		if !errors.As(err, &mismatch) {
			t.Fatalf("payments summing %v against 112.00 should fail with mismatch, got %v", sum, err)
		}
		if mismatch.ExpectedTotal != 112.00 {
			t.Fatalf("mismatch expected total = %v, want 112.00", mismatch.ExpectedTotal)
		}
		if mismatch.SubmittedSum != sum {
			t.Fatalf("mismatch submitted sum = %v, want %v", mismatch.SubmittedSum, sum)
		}
	}
}

func TestCheckPaymentsSplitAcrossMethods(t *testing.T) {
	payments := []PaymentInput{
		{MethodId: 1, Amount: 100.00},
		{MethodId: 2, Amount: 12.00, Reference: "VISA-4242"},
	}
	if err := CheckPayments(payments, 112.00); err != nil {
		t.Fatalf("split payment should pass, got %v", err)
	}
}

func TestValidateCreateInput(t *testing.T) {
	valid := CreateInvoiceInput{
		BranchId:   1,
		CustomerId: 1,
		LineItems:  []LineItemInput{{ProductId: "p1", UomId: 1, Quantity: 1}},
	}
	if err := validateCreateInput(&valid); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*CreateInvoiceInput)
	}{
		{"missing branch", func(in *CreateInvoiceInput) { in.BranchId = 0 }},
		{"missing customer", func(in *CreateInvoiceInput) { in.CustomerId = 0 }},
		{"no line items", func(in *CreateInvoiceInput) { in.LineItems = nil }},
		{"zero quantity", func(in *CreateInvoiceInput) { in.LineItems[0].Quantity = 0 }},
		{"negative quantity", func(in *CreateInvoiceInput) { in.LineItems[0].Quantity = -1 }},
		{"missing product", func(in *CreateInvoiceInput) { in.LineItems[0].ProductId = "" }},
		{"missing uom", func(in *CreateInvoiceInput) { in.LineItems[0].UomId = 0 }},
		{"discount pct over 100", func(in *CreateInvoiceInput) { in.LineItems[0].DiscountPct = 101 }},
		{"negative discount", func(in *CreateInvoiceInput) { in.Discount = -1 }},
	}
	for _, tc := range cases {
		in := valid
		in.LineItems = []LineItemInput{valid.LineItems[0]}
		tc.mutate(&in)
		err := validateCreateInput(&in)
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("%s: expected validation error, got %v", tc.name, err)
		}
	}
}

func TestInsufficientStockShortfall(t *testing.T) {
	err := &InsufficientStockError{ProductID: "p1", Requested: 5, Available: 3}
	if err.Shortfall() != 2 {
		t.Fatalf("shortfall = %v, want 2", err.Shortfall())
	}
}
