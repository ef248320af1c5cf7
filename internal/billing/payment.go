package billing

// PaymentEntry is one row of the payment breakup on a sale: a payment mode
// and the amount tendered against it.
type PaymentEntry struct {
	ModeID string  `json:"mode_id"`
	Amount float64 `json:"amount"`
}

// Reconciliation is the paid/due position of an invoice.
type Reconciliation struct {
	TotalPaid float64 `json:"total_paid"`
	Due       float64 `json:"due"`
}

// ValidatePayments returns one error per row with a missing mode or a
// non-positive amount. Whether ModeID references a real payment mode is the
// caller's concern; here it only has to be present.
func ValidatePayments(entries []PaymentEntry) []ValidationError {
	var errs []ValidationError
	for i, e := range entries {
		if e.ModeID == "" {
			errs = append(errs, ValidationError{Row: i, Field: "mode_id", Message: "payment mode is required"})
		}
		if !isFiniteNumber(e.Amount) || e.Amount <= 0 {
			errs = append(errs, ValidationError{Row: i, Field: "amount", Message: "must be a positive amount"})
		}
	}
	return errs
}

// Reconcile sums the payment entries against an invoice total. Due never goes
// negative: an over-payment reconciles to zero due.
//
// Invalid rows are not dropped here; callers must hold submission until
// ValidatePayments returns empty.
func Reconcile(entries []PaymentEntry, total float64) Reconciliation {
	var paid float64
	for _, e := range entries {
		paid += sanitize(e.Amount)
	}
	paid = Round2(paid)

	due := Round2(sanitize(total) - paid)
	if due < 0 {
		due = 0
	}
	return Reconciliation{TotalPaid: paid, Due: due}
}
