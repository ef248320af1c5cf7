// Package document renders printable invoice PDFs.
package document

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"cityfashion/internal/billing"
	"cityfashion/internal/config"
	"cityfashion/internal/domain"
)

// InvoiceData is everything the invoice layout needs, assembled by the
// caller so rendering itself does no I/O.
type InvoiceData struct {
	Kind       domain.DocumentKind
	Sale       *domain.Sale
	Items      []domain.SaleItem
	Payments   []domain.SalePayment
	ModeNames  map[string]string
	Customer   *domain.Customer
	TaxSummary billing.TaxSummary
	InWords    string
}

// Renderer draws invoice documents with the store profile in the header.
type Renderer struct {
	store config.StoreConfig
}

// NewRenderer creates a Renderer for the given store profile.
func NewRenderer(store config.StoreConfig) *Renderer {
	return &Renderer{store: store}
}

// titles maps the document kind to the printed heading.
var titles = map[domain.DocumentKind]string{
	domain.DocumentKindInvoice:     "TAX INVOICE",
	domain.DocumentKindSalesOrder:  "SALES ORDER",
	domain.DocumentKindSalesReturn: "SALES RETURN",
}

const (
	pageLeft  = 10.0
	pageWidth = 190.0
)

// Render draws the document and returns the PDF bytes.
func (r *Renderer) Render(data InvoiceData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageLeft, 10, pageLeft)
	pdf.AddPage()

	r.drawHeader(pdf, data)
	r.drawParties(pdf, data)
	r.drawItems(pdf, data.Items)
	r.drawTotals(pdf, data)
	r.drawTaxSummary(pdf, data.TaxSummary)
	r.drawFooter(pdf, data)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("document.Render: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) drawHeader(pdf *gofpdf.Fpdf, data InvoiceData) {
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(pageWidth, 8, r.store.Name, "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 9)
	if r.store.Address != "" {
		pdf.CellFormat(pageWidth, 4, r.store.Address, "", 1, "C", false, 0, "")
	}
	meta := ""
	if r.store.Phone != "" {
		meta = "Ph: " + r.store.Phone
	}
	if r.store.GSTIN != "" {
		if meta != "" {
			meta += "   "
		}
		meta += "GSTIN: " + r.store.GSTIN
	}
	if meta != "" {
		pdf.CellFormat(pageWidth, 4, meta, "", 1, "C", false, 0, "")
	}

	pdf.Ln(2)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(pageWidth, 6, titles[data.Kind], "TB", 1, "C", false, 0, "")
	pdf.Ln(2)
}

func (r *Renderer) drawParties(pdf *gofpdf.Fpdf, data InvoiceData) {
	half := pageWidth / 2

	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(half, 5, "Invoice No: "+data.Sale.InvoiceNumber, "", 0, "L", false, 0, "")
	pdf.CellFormat(half, 5, "Date: "+data.Sale.InvoiceDate.Format("02-01-2006"), "", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 9)
	if data.Customer != nil {
		pdf.CellFormat(pageWidth, 5, "Bill To: "+data.Customer.Name, "", 1, "L", false, 0, "")
		if data.Customer.Address != "" {
			pdf.CellFormat(pageWidth, 4, data.Customer.Address, "", 1, "L", false, 0, "")
		}
		if data.Customer.GSTIN != "" {
			pdf.CellFormat(pageWidth, 4, "GSTIN: "+data.Customer.GSTIN, "", 1, "L", false, 0, "")
		}
	} else {
		pdf.CellFormat(pageWidth, 5, "Bill To: Cash Sale", "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)
}

// itemColumns are width/alignment pairs for the line item table.
var itemColumns = []struct {
	title string
	width float64
	align string
}{
	{"#", 8, "C"},
	{"Description", 58, "L"},
	{"HSN", 16, "C"},
	{"Qty", 14, "R"},
	{"Rate", 20, "R"},
	{"Disc%", 14, "R"},
	{"Tax%", 14, "R"},
	{"Tax Amt", 22, "R"},
	{"Amount", 24, "R"},
}

func (r *Renderer) drawItems(pdf *gofpdf.Fpdf, items []domain.SaleItem) {
	pdf.SetFont("Arial", "B", 8)
	for _, c := range itemColumns {
		pdf.CellFormat(c.width, 6, c.title, "1", 0, c.align, false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for i := range items {
		it := &items[i]
		cells := []string{
			strconv.Itoa(i + 1),
			it.Description,
			it.HSNCode,
			trimQty(it.Quantity),
			money(it.UnitPrice),
			money(it.DiscountPercent),
			money(it.TaxPercent),
			money(it.TaxAmount),
			money(it.Total),
		}
		for j, c := range itemColumns {
			pdf.CellFormat(c.width, 5, cells[j], "1", 0, c.align, false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(2)
}

func (r *Renderer) drawTotals(pdf *gofpdf.Fpdf, data InvoiceData) {
	s := data.Sale
	labelW, valueW := pageWidth-40, 40.0

	row := func(label, value string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Arial", style, 9)
		pdf.CellFormat(labelW, 5, label, "", 0, "R", false, 0, "")
		pdf.CellFormat(valueW, 5, value, "", 1, "R", false, 0, "")
	}

	row("Subtotal", money(s.Subtotal), false)
	if s.Discount != 0 {
		row("Discount", "-"+money(s.Discount), false)
	}
	row("Tax", money(s.Tax), false)
	if s.RoundedTotal != s.GrandTotal {
		row("Round Off", money(s.RoundedTotal-s.GrandTotal), false)
	}
	row("Grand Total", money(s.RoundedTotal), true)
	if s.Due > 0 {
		row("Paid", money(s.TotalPaid), false)
		row("Balance Due", money(s.Due), true)
	}
	pdf.Ln(2)
}

func (r *Renderer) drawTaxSummary(pdf *gofpdf.Fpdf, summary billing.TaxSummary) {
	if len(summary.Groups) == 0 {
		return
	}

	headers := []string{"Tax Rate", "Taxable Amt", "CGST", "SGST", "IGST", "Total Tax"}
	widths := []float64{25, 35, 30, 30, 30, 40}

	pdf.SetFont("Arial", "B", 8)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 5, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for _, g := range summary.Groups {
		cells := []string{
			money(g.TaxPercent) + "%",
			money(g.TaxableAmount),
			money(g.CGSTAmount),
			money(g.SGSTAmount),
			money(g.IGSTAmount),
			money(g.TotalTax),
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 5, c, "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.SetFont("Arial", "B", 8)
	pdf.CellFormat(widths[0], 5, "Total", "1", 0, "C", false, 0, "")
	pdf.CellFormat(widths[1], 5, money(summary.GrandTaxable), "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[2]+widths[3]+widths[4], 5, "", "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[5], 5, money(summary.GrandTax), "1", 1, "R", false, 0, "")
	pdf.Ln(2)
}

func (r *Renderer) drawFooter(pdf *gofpdf.Fpdf, data InvoiceData) {
	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(pageWidth, 5, "Amount in words: "+data.InWords, "", 1, "L", false, 0, "")

	if len(data.Payments) > 0 {
		pdf.SetFont("Arial", "", 8)
		line := "Payment: "
		for i, p := range data.Payments {
			name := data.ModeNames[p.ModeID.String()]
			if name == "" {
				name = p.ModeID.String()
			}
			if i > 0 {
				line += ", "
			}
			line += fmt.Sprintf("%s %s", name, money(p.Amount))
		}
		pdf.CellFormat(pageWidth, 5, line, "", 1, "L", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "", 8)
	pdf.CellFormat(pageWidth/2, 5, "Goods once sold will not be taken back.", "", 0, "L", false, 0, "")
	pdf.CellFormat(pageWidth/2, 5, "For "+r.store.Name, "", 1, "R", false, 0, "")
	pdf.Ln(8)
	pdf.CellFormat(pageWidth/2, 5, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(pageWidth/2, 5, "Authorised Signatory", "", 1, "R", false, 0, "")
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// trimQty drops trailing zeros so whole quantities print as integers.
func trimQty(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
