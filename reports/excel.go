package reports

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExportProductSalesExcel renders the sales-by-product report as an .xlsx
// workbook and returns the serialized bytes.
func ExportProductSalesExcel(report *ProductSalesReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"

	headers := []string{"Product ID", "Product", "Quantity Sold", "Gross Amount", "Invoices"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for rowIdx, row := range report.Rows {
		values := []interface{}{
			row.ProductId,
			row.ProductName,
			row.QuantitySold.InexactFloat64(),
			row.GrossAmount.InexactFloat64(),
			row.InvoiceCount,
		}
		for colIdx, v := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	totalRow := len(report.Rows) + 2
	if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", totalRow), "TOTAL"); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(sheet, fmt.Sprintf("D%d", totalRow), report.TotalGross.InexactFloat64()); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
