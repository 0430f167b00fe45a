package domain

// Pricing rule constants. The scarcity and abundance thresholds are
// exclusive at the boundary: stock of exactly ScarcityThreshold or
// AbundanceThreshold takes neither adjustment.
const (
	// ScarcityThreshold is the stock level below which the surcharge applies.
	ScarcityThreshold = 10
	// AbundanceThreshold is the stock level above which the discount applies.
	AbundanceThreshold = 40
	// ScarcitySurcharge is added to the price factor for low-stock products.
	ScarcitySurcharge = 0.2
	// AbundanceDiscount is subtracted from the price factor for overstocked products.
	AbundanceDiscount = 0.1
)

// RecomputePrice derives the current price of a product from its base price
// and stock level.
//
// The rule set also carries a units-sold escalation term, but its
// coefficient is zero; it is dead logic and deliberately not implemented.
func RecomputePrice(basePrice float64, stock int) float64 {
	factor := 1.0
	if stock < ScarcityThreshold {
		factor += ScarcitySurcharge
	}
	if stock > AbundanceThreshold {
		factor -= AbundanceDiscount
	}
	return Round(basePrice * factor)
}
