package service

import (
	"cityfashion/internal/billing"
)

// PreviewInput is a draft invoice as currently typed on an entry screen:
// raw line items, the invoice-level discount, and the payment breakup.
type PreviewInput struct {
	Items                  []billing.LineItem     `json:"items"`
	InvoiceDiscountPercent float64                `json:"invoice_discount_percent"`
	Payments               []billing.PaymentEntry `json:"payments"`
}

// PreviewResult carries everything an entry or print-preview screen shows:
// per-line figures, totals, the grouped tax table, the paid/due position,
// and the rounded total in words. Validation problems are reported alongside
// the figures instead of failing, because drafts are computed while the
// operator is still typing.
type PreviewResult struct {
	Items          []billing.Computed        `json:"items"`
	Totals         billing.Totals            `json:"totals"`
	TaxSummary     billing.TaxSummary        `json:"tax_summary"`
	Reconciliation billing.Reconciliation    `json:"reconciliation"`
	TotalInWords   string                    `json:"total_in_words"`
	ItemErrors     []billing.ValidationError `json:"item_errors,omitempty"`
	PaymentErrors  []billing.ValidationError `json:"payment_errors,omitempty"`
}

// InvoiceService computes live invoice figures for entry screens. It is a
// thin layer over the billing package and performs no I/O.
type InvoiceService interface {
	Preview(input PreviewInput) PreviewResult
}

type invoiceService struct{}

// NewInvoiceService creates a new InvoiceService.
func NewInvoiceService() InvoiceService {
	return &invoiceService{}
}

func (s *invoiceService) Preview(input PreviewInput) PreviewResult {
	computed := billing.ComputeLineItems(input.Items)
	totals := billing.Aggregate(computed, input.InvoiceDiscountPercent)

	return PreviewResult{
		Items:          computed,
		Totals:         totals,
		TaxSummary:     billing.GroupByTax(input.Items),
		Reconciliation: billing.Reconcile(input.Payments, totals.RoundedTotal),
		TotalInWords:   billing.AmountInWords(totals.RoundedTotal),
		ItemErrors:     billing.ValidateLineItems(input.Items),
		PaymentErrors:  billing.ValidatePayments(input.Payments),
	}
}
