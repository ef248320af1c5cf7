package xlsxexport

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"cityfashion/internal/domain"
)

const sheetName = "Sales Register"

// columns defines the register header row.
var columns = []string{
	"Invoice Number",
	"Invoice Date",
	"Customer",
	"Subtotal",
	"Discount",
	"Tax",
	"Grand Total",
	"Paid",
	"Due",
}

// WriteSalesRegister writes the register rows as an xlsx workbook to w.
// Money columns are written as numbers so spreadsheet totals work.
func WriteSalesRegister(w io.Writer, rows []domain.SalesRegisterRow) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("xlsxexport: new sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("xlsxexport: drop default sheet: %w", err)
	}

	for i, name := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, name); err != nil {
			return fmt.Errorf("xlsxexport: header %q: %w", name, err)
		}
	}

	for i := range rows {
		r := &rows[i]
		values := []interface{}{
			r.InvoiceNumber,
			r.InvoiceDate.Format("02-01-2006"),
			r.CustomerName,
			r.Subtotal,
			r.Discount,
			r.Tax,
			r.GrandTotal,
			r.TotalPaid,
			r.Due,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return fmt.Errorf("xlsxexport: row %d: %w", i+1, err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("xlsxexport: write: %w", err)
	}
	return nil
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a report name for use in Content-Disposition.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for the Content-Disposition
// header. Format: {sanitized_name}_{YYYY-MM-DD}.xlsx
func BuildFilename(name string) string {
	return fmt.Sprintf("%s_%s.xlsx", SanitizeFilename(name), time.Now().Format("2006-01-02"))
}
