package reports

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// All reports are read-only aggregations over committed invoices; voided
// invoices are excluded. Sums are scanned into decimals so thousands of
// NUMERIC rows never accumulate float drift.

type DateRange struct {
	From time.Time
	To   time.Time
}

type ProductSalesRow struct {
	ProductId    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	QuantitySold decimal.Decimal `json:"quantity_sold"`
	GrossAmount  decimal.Decimal `json:"gross_amount"`
	InvoiceCount int64           `json:"invoice_count"`
}

type ProductSalesReport struct {
	From       time.Time         `json:"from"`
	To         time.Time         `json:"to"`
	Rows       []ProductSalesRow `json:"rows"`
	TotalGross decimal.Decimal   `json:"total_gross"`
}

func SalesByProduct(db *gorm.DB, branchId uint, r DateRange) (*ProductSalesReport, error) {
	query := db.Table("invoice_line_items AS li").
		Select(`li.product_id,
			p.name AS product_name,
			SUM(li.quantity) AS quantity_sold,
			SUM(li.subtotal) AS gross_amount,
			COUNT(DISTINCT li.invoice_id) AS invoice_count`).
		Joins("JOIN invoices i ON i.id = li.invoice_id").
		Joins("JOIN products p ON p.id = li.product_id").
		Where("i.status <> ?", "voided").
		Where("i.created_at >= ? AND i.created_at < ?", r.From, r.To).
		Group("li.product_id, p.name").
		Order("gross_amount DESC")
	if branchId > 0 {
		query = query.Where("i.branch_id = ?", branchId)
	}

	var rows []ProductSalesRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	report := ProductSalesReport{From: r.From, To: r.To, Rows: rows}
	for _, row := range rows {
		report.TotalGross = report.TotalGross.Add(row.GrossAmount)
	}
	return &report, nil
}

type BranchSalesRow struct {
	BranchId     uint            `json:"branch_id"`
	BranchName   string          `json:"branch_name"`
	InvoiceCount int64           `json:"invoice_count"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	Tax          decimal.Decimal `json:"tax"`
	Total        decimal.Decimal `json:"total"`
}

type BranchSalesReport struct {
	From       time.Time        `json:"from"`
	To         time.Time        `json:"to"`
	Rows       []BranchSalesRow `json:"rows"`
	GrandTotal decimal.Decimal  `json:"grand_total"`
}

func SalesByBranch(db *gorm.DB, r DateRange) (*BranchSalesReport, error) {
	var rows []BranchSalesRow
	err := db.Table("invoices AS i").
		Select(`i.branch_id,
			b.name AS branch_name,
			COUNT(*) AS invoice_count,
			SUM(i.subtotal) AS subtotal,
			SUM(i.tax) AS tax,
			SUM(i.total) AS total`).
		Joins("JOIN branches b ON b.id = i.branch_id").
		Where("i.status <> ?", "voided").
		Where("i.created_at >= ? AND i.created_at < ?", r.From, r.To).
		Group("i.branch_id, b.name").
		Order("total DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	report := BranchSalesReport{From: r.From, To: r.To, Rows: rows}
	for _, row := range rows {
		report.GrandTotal = report.GrandTotal.Add(row.Total)
	}
	return &report, nil
}

type TopCustomerRow struct {
	CustomerId   uint            `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	InvoiceCount int64           `json:"invoice_count"`
	Total        decimal.Decimal `json:"total"`
}

func TopCustomers(db *gorm.DB, branchId uint, r DateRange, limit int) ([]TopCustomerRow, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	query := db.Table("invoices AS i").
		Select(`i.c_id AS customer_id,
			c.first_name || ' ' || c.last_name AS customer_name,
			COUNT(*) AS invoice_count,
			SUM(i.total) AS total`).
		Joins("JOIN customers c ON c.id = i.c_id").
		Where("i.status <> ?", "voided").
		Where("i.created_at >= ? AND i.created_at < ?", r.From, r.To).
		Group("i.c_id, c.first_name, c.last_name").
		Order("total DESC").
		Limit(limit)
	if branchId > 0 {
		query = query.Where("i.branch_id = ?", branchId)
	}

	var rows []TopCustomerRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
