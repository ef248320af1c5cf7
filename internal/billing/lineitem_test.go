package billing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeLineItem_IntraState(t *testing.T) {
	item := LineItem{
		Description:     "Cotton Shirt",
		HSNCode:         "6105",
		Quantity:        2,
		UnitPrice:       100,
		DiscountPercent: 10,
		TaxPercent:      18,
		InterState:      false,
	}

	c := ComputeLineItem(item)

	assert.InDelta(t, 200.0, c.Subtotal, 0.001)
	assert.InDelta(t, 236.0, c.SubtotalWithTax, 0.001)
	assert.InDelta(t, 36.0, c.TaxAmount, 0.001)
	assert.InDelta(t, 23.6, c.DiscountAmount, 0.001)
	assert.InDelta(t, 212.40, c.Total, 0.001)

	assert.InDelta(t, 9.0, c.CGSTRate, 0.001)
	assert.InDelta(t, 9.0, c.SGSTRate, 0.001)
	assert.InDelta(t, 18.0, c.CGSTAmount, 0.001)
	assert.InDelta(t, 18.0, c.SGSTAmount, 0.001)
	assert.Zero(t, c.IGSTRate)
	assert.Zero(t, c.IGSTAmount)
}

func TestComputeLineItem_InterState(t *testing.T) {
	c := ComputeLineItem(LineItem{
		Quantity:   3,
		UnitPrice:  50,
		TaxPercent: 12,
		InterState: true,
	})

	assert.InDelta(t, 150.0, c.Subtotal, 0.001)
	assert.InDelta(t, 18.0, c.TaxAmount, 0.001)
	assert.InDelta(t, 12.0, c.IGSTRate, 0.001)
	assert.InDelta(t, 18.0, c.IGSTAmount, 0.001)
	assert.Zero(t, c.CGSTAmount)
	assert.Zero(t, c.SGSTAmount)
	assert.InDelta(t, 168.0, c.Total, 0.001)
}

func TestComputeLineItem_TotalInvariant(t *testing.T) {
	items := []LineItem{
		{Quantity: 1, UnitPrice: 99.99, DiscountPercent: 5, TaxPercent: 18},
		{Quantity: 0.75, UnitPrice: 640, DiscountPercent: 0, TaxPercent: 5},
		{Quantity: 12, UnitPrice: 33.33, DiscountPercent: 100, TaxPercent: 28, InterState: true},
		{Quantity: 4, UnitPrice: 0, DiscountPercent: 50, TaxPercent: 12},
	}

	for _, item := range items {
		c := ComputeLineItem(item)
		assert.InDelta(t, Round2(c.SubtotalWithTax-c.DiscountAmount), c.Total, 0.001)
		assert.GreaterOrEqual(t, c.Total, 0.0)
	}
}

func TestComputeLineItem_FractionalQuantity(t *testing.T) {
	// Weight-based units sell fractional quantities.
	c := ComputeLineItem(LineItem{Quantity: 1.5, UnitPrice: 80, TaxPercent: 5})

	assert.InDelta(t, 120.0, c.Subtotal, 0.001)
	assert.InDelta(t, 6.0, c.TaxAmount, 0.001)
	assert.InDelta(t, 126.0, c.Total, 0.001)
}

func TestComputeLineItem_NonFiniteCoercesToZero(t *testing.T) {
	c := ComputeLineItem(LineItem{Quantity: math.NaN(), UnitPrice: 100, TaxPercent: 18})
	assert.Zero(t, c.Total)
	assert.Zero(t, c.Subtotal)

	c = ComputeLineItem(LineItem{Quantity: 1, UnitPrice: math.Inf(1), TaxPercent: 18})
	assert.Zero(t, c.Total)
}

func TestComputeLineItem_HalvesReconcile(t *testing.T) {
	// An odd tax amount must still split into halves that re-sum exactly.
	c := ComputeLineItem(LineItem{Quantity: 1, UnitPrice: 100.05, TaxPercent: 18})

	assert.InDelta(t, Round2(c.TaxAmount), c.CGSTAmount+c.SGSTAmount, 0.0001)
}

func TestComputeLineItem_Idempotent(t *testing.T) {
	item := LineItem{Quantity: 7, UnitPrice: 42.42, DiscountPercent: 3.5, TaxPercent: 18}
	first := ComputeLineItem(item)
	second := ComputeLineItem(item)
	assert.Equal(t, first, second)
}

func TestValidateLineItems(t *testing.T) {
	errs := ValidateLineItems([]LineItem{
		{Quantity: 1, UnitPrice: 10, TaxPercent: 18},
		{Quantity: 0, UnitPrice: -5, DiscountPercent: 120, TaxPercent: 18},
		{Quantity: 2, UnitPrice: 10, TaxPercent: 101},
	})

	require.Len(t, errs, 4)
	assert.Equal(t, 1, errs[0].Row)
	assert.Equal(t, "quantity", errs[0].Field)
	assert.Equal(t, "unit_price", errs[1].Field)
	assert.Equal(t, "discount_percent", errs[2].Field)
	assert.Equal(t, 2, errs[3].Row)
	assert.Equal(t, "tax_percent", errs[3].Field)
}

func TestValidateLineItems_AllValid(t *testing.T) {
	errs := ValidateLineItems([]LineItem{
		{Quantity: 1.25, UnitPrice: 10, DiscountPercent: 0, TaxPercent: 0},
		{Quantity: 3, UnitPrice: 0, DiscountPercent: 100, TaxPercent: 28},
	})
	assert.Empty(t, errs)
}
