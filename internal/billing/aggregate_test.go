package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregate_Empty(t *testing.T) {
	for _, discount := range []float64{0, 10, 100} {
		totals := Aggregate(nil, discount)
		assert.Zero(t, totals.Subtotal)
		assert.Zero(t, totals.Discount)
		assert.Zero(t, totals.Tax)
		assert.Zero(t, totals.GrandTotal)
		assert.Zero(t, totals.RoundedTotal)
	}
}

func TestAggregate(t *testing.T) {
	items := ComputeLineItems([]LineItem{
		{Quantity: 2, UnitPrice: 100, DiscountPercent: 10, TaxPercent: 18},
		{Quantity: 1, UnitPrice: 500, TaxPercent: 12, InterState: true},
	})

	totals := Aggregate(items, 5)

	// Subtotal over raw qty x price, untouched by line discounts.
	assert.InDelta(t, 700.0, totals.Subtotal, 0.001)
	assert.InDelta(t, 96.0, totals.Tax, 0.001)
	assert.InDelta(t, 35.0, totals.Discount, 0.001)
	assert.InDelta(t, 761.0, totals.GrandTotal, 0.001)
	assert.InDelta(t, 761.0, totals.RoundedTotal, 0.001)
}

func TestAggregate_GrandTotalInvariant(t *testing.T) {
	items := ComputeLineItems([]LineItem{
		{Quantity: 3, UnitPrice: 33.33, DiscountPercent: 7, TaxPercent: 5},
		{Quantity: 0.5, UnitPrice: 1299, TaxPercent: 28},
		{Quantity: 11, UnitPrice: 9.99, TaxPercent: 18, InterState: true},
	})

	totals := Aggregate(items, 2.5)
	assert.InDelta(t, totals.Subtotal-totals.Discount+totals.Tax, totals.GrandTotal, 0.01)
}

func TestAggregate_RoundedTotalHalfUp(t *testing.T) {
	// 1 x 100.50 at 0% tax: grand total 100.50 rounds up to 101.
	items := ComputeLineItems([]LineItem{{Quantity: 1, UnitPrice: 100.50}})
	totals := Aggregate(items, 0)

	assert.InDelta(t, 100.50, totals.GrandTotal, 0.001)
	assert.InDelta(t, 101.0, totals.RoundedTotal, 0.001)
	assert.InDelta(t, 0.50, totals.RoundOff, 0.001)
}

func TestAggregate_FullInvoiceDiscountNeverNegative(t *testing.T) {
	items := ComputeLineItems([]LineItem{{Quantity: 1, UnitPrice: 100}})
	totals := Aggregate(items, 100)

	assert.InDelta(t, 100.0, totals.Discount, 0.001)
	assert.GreaterOrEqual(t, totals.GrandTotal, 0.0)
}

func TestAggregate_TaxMatchesGroupedTax(t *testing.T) {
	raw := []LineItem{
		{Quantity: 2, UnitPrice: 150, DiscountPercent: 5, TaxPercent: 5},
		{Quantity: 1, UnitPrice: 890, TaxPercent: 18},
		{Quantity: 6, UnitPrice: 75.25, TaxPercent: 18},
	}

	totals := Aggregate(ComputeLineItems(raw), 0)
	summary := GroupByTax(raw)

	var grouped float64
	for _, g := range summary.Groups {
		grouped += g.TotalTax
	}
	assert.InDelta(t, totals.Tax, grouped, 0.01)
}
