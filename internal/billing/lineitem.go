package billing

import "fmt"

// DiscountBasis names the figure a percentage discount is applied to.
type DiscountBasis string

const (
	// DiscountBasisTaxInclusive applies the line discount to the
	// tax-inclusive subtotal. This is the behavior the sale and purchase
	// entry screens have always shown, so documents downstream depend on it.
	DiscountBasisTaxInclusive DiscountBasis = "tax_inclusive"
)

// LineItem is one row of a sale or purchase entry as typed by the operator.
type LineItem struct {
	Description     string  `json:"description"`
	HSNCode         string  `json:"hsn_code"`
	Quantity        float64 `json:"quantity"`
	UnitPrice       float64 `json:"unit_price"`
	DiscountPercent float64 `json:"discount_percent"`
	TaxPercent      float64 `json:"tax_percent"`
	InterState      bool    `json:"inter_state"`
}

// Computed holds the derived figures for a single line item. It is never
// mutated once produced.
type Computed struct {
	LineItem

	// Subtotal is quantity x unit price, before tax and discount.
	Subtotal        float64 `json:"subtotal"`
	SubtotalWithTax float64 `json:"subtotal_with_tax"`
	TaxAmount       float64 `json:"tax_amount"`
	DiscountAmount  float64 `json:"discount_amount"`
	Total           float64 `json:"total"`

	// Regime attribution of TaxAmount, used by tax summaries only.
	CGSTRate   float64 `json:"cgst_rate"`
	CGSTAmount float64 `json:"cgst_amount"`
	SGSTRate   float64 `json:"sgst_rate"`
	SGSTAmount float64 `json:"sgst_amount"`
	IGSTRate   float64 `json:"igst_rate"`
	IGSTAmount float64 `json:"igst_amount"`
}

// ComputeLineItem derives all per-line figures from a line item.
//
// Tax is computed on the unit price before the discount is subtracted, and
// the discount percentage applies to the tax-inclusive subtotal
// (DiscountBasisTaxInclusive). The ordering is deliberate: it matches what
// the entry screens have always displayed and what printed documents assume.
func ComputeLineItem(item LineItem) Computed {
	base := sanitize(item.Quantity * item.UnitPrice)
	priceWithTax := item.UnitPrice + (item.TaxPercent/100)*item.UnitPrice
	subtotalWithTax := sanitize(priceWithTax * item.Quantity)
	taxAmount := sanitize(base * item.TaxPercent / 100)
	discountAmount := sanitize((item.DiscountPercent / 100) * subtotalWithTax)

	total := Round2(subtotalWithTax - discountAmount)
	if total < 0 {
		total = 0
	}

	c := Computed{
		LineItem:        item,
		Subtotal:        base,
		SubtotalWithTax: subtotalWithTax,
		TaxAmount:       taxAmount,
		DiscountAmount:  discountAmount,
		Total:           total,
	}

	if item.InterState {
		c.IGSTRate = item.TaxPercent
		c.IGSTAmount = Round2(taxAmount)
	} else {
		// Round one half and derive the other from the rounded total so the
		// halves always re-sum exactly.
		c.CGSTRate = item.TaxPercent / 2
		c.SGSTRate = item.TaxPercent / 2
		c.CGSTAmount = Round2(taxAmount / 2)
		c.SGSTAmount = Round2(taxAmount) - c.CGSTAmount
	}

	return c
}

// ComputeLineItems computes every line item in order.
func ComputeLineItems(items []LineItem) []Computed {
	computed := make([]Computed, len(items))
	for i, item := range items {
		computed[i] = ComputeLineItem(item)
	}
	return computed
}

// ValidationError reports one invalid field on one input row.
type ValidationError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("row %d: %s: %s", e.Row, e.Field, e.Message)
}

// ValidateLineItems checks line items before their totals are trusted for a
// real transaction. ComputeLineItem itself never fails; callers are expected
// to block submission while this returns a non-empty slice.
func ValidateLineItems(items []LineItem) []ValidationError {
	var errs []ValidationError
	for i, item := range items {
		if !isFiniteNumber(item.Quantity) || item.Quantity <= 0 {
			errs = append(errs, ValidationError{Row: i, Field: "quantity", Message: "must be a positive number"})
		}
		if !isFiniteNumber(item.UnitPrice) || item.UnitPrice < 0 {
			errs = append(errs, ValidationError{Row: i, Field: "unit_price", Message: "must be a non-negative number"})
		}
		if !isFiniteNumber(item.DiscountPercent) || item.DiscountPercent < 0 || item.DiscountPercent > 100 {
			errs = append(errs, ValidationError{Row: i, Field: "discount_percent", Message: "must be between 0 and 100"})
		}
		if !isFiniteNumber(item.TaxPercent) || item.TaxPercent < 0 || item.TaxPercent > 100 {
			errs = append(errs, ValidationError{Row: i, Field: "tax_percent", Message: "must be between 0 and 100"})
		}
	}
	return errs
}

func isFiniteNumber(v float64) bool {
	return sanitize(v) == v
}
