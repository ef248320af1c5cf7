package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cityfashion/internal/billing"
)

func TestInvoicePreview(t *testing.T) {
	svc := NewInvoiceService()

	result := svc.Preview(PreviewInput{
		Items: []billing.LineItem{
			{Description: "Shirt", Quantity: 2, UnitPrice: 100, DiscountPercent: 10, TaxPercent: 18},
		},
		Payments: []billing.PaymentEntry{
			{ModeID: "cash", Amount: 100},
		},
	})

	require.Len(t, result.Items, 1)
	assert.Equal(t, 200.0, result.Items[0].Subtotal)
	assert.Equal(t, 236.0, result.Items[0].SubtotalWithTax)
	assert.Equal(t, 23.6, result.Items[0].DiscountAmount)
	assert.Equal(t, 212.40, result.Items[0].Total)

	assert.Equal(t, 236.0, result.Totals.GrandTotal)
	assert.Equal(t, "Two Hundred Thirty Six Rupees Only", result.TotalInWords)

	require.Len(t, result.TaxSummary.Groups, 1)
	assert.Equal(t, 18.0, result.TaxSummary.Groups[0].TaxPercent)

	assert.Equal(t, 100.0, result.Reconciliation.TotalPaid)
	assert.Equal(t, 136.0, result.Reconciliation.Due)

	assert.Empty(t, result.ItemErrors)
	assert.Empty(t, result.PaymentErrors)
}

// Drafts mid-edit still compute; problems surface alongside the figures.
func TestInvoicePreviewReportsValidationErrors(t *testing.T) {
	svc := NewInvoiceService()

	result := svc.Preview(PreviewInput{
		Items: []billing.LineItem{
			{Description: "Shirt", Quantity: 0, UnitPrice: -5},
		},
		Payments: []billing.PaymentEntry{
			{ModeID: "", Amount: 0},
		},
	})

	assert.NotEmpty(t, result.ItemErrors)
	assert.NotEmpty(t, result.PaymentErrors)
	assert.Equal(t, 0.0, result.Totals.GrandTotal)
}

func TestInvoicePreviewEmpty(t *testing.T) {
	svc := NewInvoiceService()

	result := svc.Preview(PreviewInput{})
	assert.Equal(t, 0.0, result.Totals.Subtotal)
	assert.Equal(t, "Zero Rupees Only", result.TotalInWords)
	assert.Empty(t, result.TaxSummary.Groups)
}
