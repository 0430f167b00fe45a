package domain

import "math"

// Round rounds a monetary value to two decimal places, half away from zero.
// Every derived currency value (prices, totals, discounts, loyalty credits)
// passes through Round before it is stored or returned.
func Round(value float64) float64 {
	return math.Round(value*100) / 100
}
