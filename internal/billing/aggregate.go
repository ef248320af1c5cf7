package billing

// Totals holds the invoice-level figures derived from computed line items.
type Totals struct {
	Subtotal     float64 `json:"subtotal"`
	Discount     float64 `json:"discount"`
	Tax          float64 `json:"tax"`
	GrandTotal   float64 `json:"grand_total"`
	RoundedTotal float64 `json:"rounded_total"`
	RoundOff     float64 `json:"round_off"`
}

// Aggregate sums computed line items into invoice totals.
//
// Subtotal is the pre-tax, pre-discount base (quantity x unit price summed
// over the raw inputs). The invoice-level discount percentage is a second
// discount on top of any per-line discounts: per-line discounts only affect
// each line's total, while this one is applied once to the aggregate
// subtotal. The two are reported separately, never combined.
func Aggregate(items []Computed, invoiceDiscountPercent float64) Totals {
	var subtotal, tax float64
	for i := range items {
		subtotal += items[i].Subtotal
		tax += items[i].TaxAmount
	}
	subtotal = sanitize(subtotal)
	tax = sanitize(tax)

	discount := sanitize(subtotal * invoiceDiscountPercent / 100)

	grandTotal := subtotal - discount + tax
	if grandTotal < 0 {
		grandTotal = 0
	}
	grandTotal = Round2(grandTotal)
	roundedTotal := RoundRupee(grandTotal)

	return Totals{
		Subtotal:     Round2(subtotal),
		Discount:     Round2(discount),
		Tax:          Round2(tax),
		GrandTotal:   grandTotal,
		RoundedTotal: roundedTotal,
		RoundOff:     Round2(roundedTotal - grandTotal),
	}
}
