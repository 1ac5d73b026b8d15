package reports

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

func TestExportProductSalesExcel(t *testing.T) {
	report := &ProductSalesReport{
		From: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Rows: []ProductSalesRow{
			{ProductId: "p1", ProductName: "Latex blanco", QuantitySold: decimal.NewFromInt(12), GrossAmount: decimal.NewFromFloat(1344.00), InvoiceCount: 4},
			{ProductId: "p2", ProductName: "Esmalte rojo", QuantitySold: decimal.NewFromInt(3), GrossAmount: decimal.NewFromFloat(504.00), InvoiceCount: 2},
		},
		TotalGross: decimal.NewFromFloat(1848.00),
	}

	raw, err := ExportProductSalesExcel(report)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if len(raw) == 0 {
		t.Fatal("empty workbook")
	}

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	header, err := f.GetCellValue("Sheet1", "B1")
	if err != nil || header != "Product" {
		t.Fatalf("B1 = %q (%v), want Product", header, err)
	}
	name, err := f.GetCellValue("Sheet1", "B2")
	if err != nil || name != "Latex blanco" {
		t.Fatalf("B2 = %q (%v), want Latex blanco", name, err)
	}
	label, err := f.GetCellValue("Sheet1", "A4")
	if err != nil || label != "TOTAL" {
		t.Fatalf("A4 = %q (%v), want TOTAL", label, err)
	}
	total, err := f.GetCellValue("Sheet1", "D4")
	if err != nil || total != "1848" {
		t.Fatalf("D4 = %q (%v), want 1848", total, err)
	}
}
