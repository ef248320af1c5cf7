package billing

import "math"

// Round2 rounds to 2 decimal places (half away from zero).
func Round2(v float64) float64 {
	return math.Round(sanitize(v)*100) / 100
}

// RoundRupee rounds to the nearest whole rupee, half-up for positive amounts.
func RoundRupee(v float64) float64 {
	return math.Round(sanitize(v))
}

// sanitize coerces NaN and infinities to 0 so that totals computed from a
// partially-entered form degrade to zero instead of propagating garbage.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
