package billing

import (
	"math"
	"strings"
)

var wordsOnes = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var wordsTens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// AmountInWords renders a non-negative rupee amount as Indian-numbering-system
// words for the amount-in-words block of a printed invoice, e.g.
// 1234.50 -> "One Thousand Two Hundred Thirty Four Rupees and Fifty Paisa Only".
// The paise clause is omitted when paise is zero.
func AmountInWords(amount float64) string {
	amount = sanitize(amount)
	if amount <= 0 {
		return "Zero Rupees Only"
	}

	rupees := int64(math.Floor(amount))
	paise := int64(math.Round((amount - math.Floor(amount)) * 100))
	if paise >= 100 {
		rupees++
		paise -= 100
	}

	rupeeWords := "Zero"
	if rupees > 0 {
		rupeeWords = indianWords(rupees)
	}

	if paise == 0 {
		return rupeeWords + " Rupees Only"
	}
	return rupeeWords + " Rupees and " + indianWords(paise) + " Paisa Only"
}

// indianWords converts a positive integer into words grouped by the Indian
// system: crore (1e7), lakh (1e5), thousand, hundred.
func indianWords(n int64) string {
	var parts []string

	if n >= 10000000 {
		parts = append(parts, indianWords(n/10000000)+" Crore")
		n %= 10000000
	}
	if n >= 100000 {
		parts = append(parts, wordsUnderHundred(n/100000)+" Lakh")
		n %= 100000
	}
	if n >= 1000 {
		parts = append(parts, wordsUnderHundred(n/1000)+" Thousand")
		n %= 1000
	}
	if n >= 100 {
		parts = append(parts, wordsOnes[n/100]+" Hundred")
		n %= 100
	}
	if n > 0 {
		parts = append(parts, wordsUnderHundred(n))
	}

	return strings.Join(parts, " ")
}

func wordsUnderHundred(n int64) string {
	if n < 20 {
		return wordsOnes[n]
	}
	if n%10 == 0 {
		return wordsTens[n/10]
	}
	return wordsTens[n/10] + " " + wordsOnes[n%10]
}
