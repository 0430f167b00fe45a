package domain

import (
	"errors"
	"time"
)

// DiscountRate is the flat loyalty discount applied at checkout and in
// discounted cart totals. The same rate feeds both, so the discount shown
// always matches the loyalty credit earned.
const DiscountRate = 0.05

var (
	// ErrNotAuthenticated indicates a checkout attempted without a logged-in user.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrEmptyCart indicates a checkout attempted with no cart entries.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrOperatorRequired indicates an operator-only action from a regular session.
	ErrOperatorRequired = errors.New("operator mode is required")
)

// Receipt summarizes one completed checkout.
type Receipt struct {
	// Total is the undiscounted cart total at checkout time.
	Total float64
	// Discount is the loyalty discount taken off the total.
	Discount float64
	// Charged is the amount charged: Total minus Discount, rounded.
	Charged float64
	// LoyaltyEarned is the loyalty credit, always equal to Discount.
	LoyaltyEarned float64
	// Items is the number of cart entries settled, duplicates included.
	Items int
	// CompletedAt is when the checkout was applied.
	CompletedAt time.Time
}

// Discount returns the loyalty discount for a cart total.
func Discount(total float64) float64 {
	return Round(total * DiscountRate)
}

// DiscountedTotal applies the loyalty discount when a user is present;
// anonymous sessions pay the full total.
func DiscountedTotal(total float64, authenticated bool) float64 {
	if !authenticated {
		return total
	}
	return Round(total - total*DiscountRate)
}
