package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByTax_SingleGroup(t *testing.T) {
	summary := GroupByTax([]LineItem{
		{Quantity: 2, UnitPrice: 100, DiscountPercent: 10, TaxPercent: 18},
	})

	require.Len(t, summary.Groups, 1)
	g := summary.Groups[0]

	// taxable = 200 - 23.60 - 36 = 140.40
	assert.InDelta(t, 140.40, g.TaxableAmount, 0.001)
	assert.InDelta(t, 36.0, g.TotalTax, 0.001)
	assert.InDelta(t, 9.0, g.CGSTRate, 0.001)
	assert.InDelta(t, 18.0, g.CGSTAmount, 0.001)
	assert.InDelta(t, 18.0, g.SGSTAmount, 0.001)
	assert.False(t, summary.HasInterState)
}

func TestGroupByTax_MergesSameRateAndRegime(t *testing.T) {
	summary := GroupByTax([]LineItem{
		{Quantity: 1, UnitPrice: 100, TaxPercent: 18},
		{Quantity: 2, UnitPrice: 50, TaxPercent: 18},
		{Quantity: 1, UnitPrice: 200, TaxPercent: 5},
	})

	require.Len(t, summary.Groups, 2)
	// Ascending rate order.
	assert.InDelta(t, 5.0, summary.Groups[0].TaxPercent, 0.001)
	assert.InDelta(t, 18.0, summary.Groups[1].TaxPercent, 0.001)
	// taxable = (100 - 18) + (100 - 18) = 164
	assert.InDelta(t, 164.0, summary.Groups[1].TaxableAmount, 0.001)
	assert.InDelta(t, 36.0, summary.Groups[1].TotalTax, 0.001)
}

func TestGroupByTax_RegimeNeverMerges(t *testing.T) {
	// Same numeric rate, different regime: the document needs separate
	// CGST/SGST and IGST columns, so these stay apart.
	summary := GroupByTax([]LineItem{
		{Quantity: 1, UnitPrice: 100, TaxPercent: 18, InterState: false},
		{Quantity: 1, UnitPrice: 100, TaxPercent: 18, InterState: true},
	})

	require.Len(t, summary.Groups, 2)
	assert.False(t, summary.Groups[0].InterState)
	assert.True(t, summary.Groups[1].InterState)
	assert.True(t, summary.HasInterState)
}

func TestGroupByTax_InterStateUsesIGST(t *testing.T) {
	summary := GroupByTax([]LineItem{
		{Quantity: 4, UnitPrice: 250, TaxPercent: 12, InterState: true},
	})

	require.Len(t, summary.Groups, 1)
	g := summary.Groups[0]
	assert.InDelta(t, 12.0, g.IGSTRate, 0.001)
	assert.InDelta(t, 120.0, g.IGSTAmount, 0.001)
	assert.Zero(t, g.CGSTAmount)
	assert.Zero(t, g.SGSTAmount)
	assert.True(t, summary.HasInterState)
}

func TestGroupByTax_PartitionsExactly(t *testing.T) {
	items := []LineItem{
		{Quantity: 1, UnitPrice: 119, DiscountPercent: 3, TaxPercent: 5},
		{Quantity: 2, UnitPrice: 240, TaxPercent: 5},
		{Quantity: 1, UnitPrice: 67.50, TaxPercent: 12},
		{Quantity: 3, UnitPrice: 420, TaxPercent: 18, InterState: true},
	}

	summary := GroupByTax(items)

	var taxable, tax float64
	for _, g := range summary.Groups {
		taxable += g.TaxableAmount
		tax += g.TotalTax
	}
	assert.InDelta(t, summary.GrandTaxable, taxable, 0.01)
	assert.InDelta(t, summary.GrandTax, tax, 0.01)

	// Grouped tax equals aggregated tax over the same items.
	totals := Aggregate(ComputeLineItems(items), 0)
	assert.InDelta(t, totals.Tax, summary.GrandTax, 0.01)
}

func TestGroupByTax_HalvesReconcilePerGroup(t *testing.T) {
	summary := GroupByTax([]LineItem{
		{Quantity: 3, UnitPrice: 33.35, TaxPercent: 18},
		{Quantity: 1, UnitPrice: 99.95, TaxPercent: 18},
	})

	require.Len(t, summary.Groups, 1)
	g := summary.Groups[0]
	assert.InDelta(t, g.TotalTax, g.CGSTAmount+g.SGSTAmount, 0.0001)
}

func TestGroupByTax_Empty(t *testing.T) {
	summary := GroupByTax(nil)
	assert.Empty(t, summary.Groups)
	assert.Zero(t, summary.GrandTaxable)
	assert.Zero(t, summary.GrandTax)
	assert.False(t, summary.HasInterState)
}
