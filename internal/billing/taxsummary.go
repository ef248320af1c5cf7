package billing

import "sort"

// TaxGroup is one row of a statutory tax table: all line items sharing a tax
// rate and regime, with their taxable base and tax accumulated.
type TaxGroup struct {
	TaxPercent    float64 `json:"tax_percent"`
	InterState    bool    `json:"inter_state"`
	TaxableAmount float64 `json:"taxable_amount"`
	TotalTax      float64 `json:"total_tax"`

	CGSTRate   float64 `json:"cgst_rate"`
	CGSTAmount float64 `json:"cgst_amount"`
	SGSTRate   float64 `json:"sgst_rate"`
	SGSTAmount float64 `json:"sgst_amount"`
	IGSTRate   float64 `json:"igst_rate"`
	IGSTAmount float64 `json:"igst_amount"`
}

// TaxSummary is the grouped tax breakdown for a printable document, plus the
// grand-total row.
type TaxSummary struct {
	Groups       []TaxGroup `json:"groups"`
	GrandTaxable float64    `json:"grand_taxable"`
	GrandTax     float64    `json:"grand_tax"`

	// HasInterState is true when any group is IGST. It selects between the
	// 2-column IGST layout and the 4-column CGST/SGST layout for the whole
	// table. An invoice mixing both regimes still renders as one table with
	// this flag decided globally; per-group rates and amounts carry enough
	// information for a renderer that wants to show both column sets.
	HasInterState bool `json:"has_inter_state"`
}

// GroupByTax partitions line items by (tax rate, regime) and accumulates the
// taxable base and tax per group. Each item lands in exactly one group.
// Groups are emitted in ascending rate order, intra-state before inter-state
// on equal rates, so document output is stable.
func GroupByTax(items []LineItem) TaxSummary {
	type key struct {
		rate       float64
		interState bool
	}

	acc := make(map[key]*TaxGroup)
	for _, item := range items {
		c := ComputeLineItem(item)
		// Base before tax: line subtotal less discount less the tax that the
		// discount was computed on top of.
		taxable := sanitize(c.Subtotal - c.DiscountAmount - c.TaxAmount)

		k := key{rate: item.TaxPercent, interState: item.InterState}
		g, ok := acc[k]
		if !ok {
			g = &TaxGroup{TaxPercent: item.TaxPercent, InterState: item.InterState}
			acc[k] = g
		}
		g.TaxableAmount += taxable
		g.TotalTax += c.TaxAmount
	}

	summary := TaxSummary{Groups: make([]TaxGroup, 0, len(acc))}
	for _, g := range acc {
		g.TaxableAmount = Round2(g.TaxableAmount)
		roundedTax := Round2(g.TotalTax)
		if g.InterState {
			g.IGSTRate = g.TaxPercent
			g.IGSTAmount = roundedTax
			summary.HasInterState = true
		} else {
			// One half rounded, the other derived, so the halves re-sum to
			// the group's tax exactly.
			g.CGSTRate = g.TaxPercent / 2
			g.SGSTRate = g.TaxPercent / 2
			g.CGSTAmount = Round2(g.TotalTax / 2)
			g.SGSTAmount = roundedTax - g.CGSTAmount
		}
		g.TotalTax = roundedTax
		summary.GrandTaxable += g.TaxableAmount
		summary.GrandTax += g.TotalTax
		summary.Groups = append(summary.Groups, *g)
	}

	sort.Slice(summary.Groups, func(i, j int) bool {
		a, b := summary.Groups[i], summary.Groups[j]
		if a.TaxPercent != b.TaxPercent {
			return a.TaxPercent < b.TaxPercent
		}
		return !a.InterState && b.InterState
	})

	summary.GrandTaxable = Round2(summary.GrandTaxable)
	summary.GrandTax = Round2(summary.GrandTax)
	return summary
}
