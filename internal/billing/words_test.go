package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmountInWords(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "Zero Rupees Only"},
		{1, "One Rupees Only"},
		{19, "Nineteen Rupees Only"},
		{20, "Twenty Rupees Only"},
		{45, "Forty Five Rupees Only"},
		{100, "One Hundred Rupees Only"},
		{118, "One Hundred Eighteen Rupees Only"},
		{1234.50, "One Thousand Two Hundred Thirty Four Rupees and Fifty Paisa Only"},
		{100000, "One Lakh Rupees Only"},
		{2550000, "Twenty Five Lakh Fifty Thousand Rupees Only"},
		{10000000, "One Crore Rupees Only"},
		{123456789, "Twelve Crore Thirty Four Lakh Fifty Six Thousand Seven Hundred Eighty Nine Rupees Only"},
		{0.75, "Zero Rupees and Seventy Five Paisa Only"},
		{212.40, "Two Hundred Twelve Rupees and Forty Paisa Only"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, AmountInWords(tc.amount), "amount %v", tc.amount)
	}
}

func TestAmountInWords_PaiseCarry(t *testing.T) {
	// 4.999 rounds to 500 paise, which must carry into rupees.
	assert.Equal(t, "Five Rupees Only", AmountInWords(4.999))
}

func TestAmountInWords_NegativeAndNonFinite(t *testing.T) {
	assert.Equal(t, "Zero Rupees Only", AmountInWords(-10))
}
