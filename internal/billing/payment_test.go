package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcile(t *testing.T) {
	rec := Reconcile([]PaymentEntry{
		{ModeID: "cash", Amount: 50},
		{ModeID: "card", Amount: 30},
	}, 100)

	assert.InDelta(t, 80.0, rec.TotalPaid, 0.001)
	assert.InDelta(t, 20.0, rec.Due, 0.001)
}

func TestReconcile_OverPaymentDueIsZero(t *testing.T) {
	rec := Reconcile([]PaymentEntry{{ModeID: "cash", Amount: 150}}, 100)

	assert.InDelta(t, 150.0, rec.TotalPaid, 0.001)
	assert.Zero(t, rec.Due)
}

func TestReconcile_NoPayments(t *testing.T) {
	rec := Reconcile(nil, 250.40)
	assert.Zero(t, rec.TotalPaid)
	assert.InDelta(t, 250.40, rec.Due, 0.001)
}

func TestValidatePayments_MissingMode(t *testing.T) {
	errs := ValidatePayments([]PaymentEntry{{ModeID: "", Amount: 10}})

	require.Len(t, errs, 1)
	assert.Equal(t, 0, errs[0].Row)
	assert.Equal(t, "mode_id", errs[0].Field)
}

func TestValidatePayments_NonPositiveAmount(t *testing.T) {
	errs := ValidatePayments([]PaymentEntry{
		{ModeID: "cash", Amount: 100},
		{ModeID: "card", Amount: 0},
		{ModeID: "upi", Amount: -5},
	})

	require.Len(t, errs, 2)
	assert.Equal(t, 1, errs[0].Row)
	assert.Equal(t, "amount", errs[0].Field)
	assert.Equal(t, 2, errs[1].Row)
}

func TestValidatePayments_Valid(t *testing.T) {
	assert.Empty(t, ValidatePayments([]PaymentEntry{{ModeID: "cash", Amount: 0.01}}))
	assert.Empty(t, ValidatePayments(nil))
}
