package engine

import (
	"context"

	"github.com/louisbranch/storefront/internal/services/shop/domain"
)

// Checkout settles the session cart as one atomic unit: stock decrements,
// loyalty credit, cart clear, and the follow-up repricing all happen under
// the engine lock, so no reader observes an intermediate state.
//
// Stock is decremented once per distinct product ID in the cart, not once
// per entry: a cart holding the same product twice charges for two units
// but consumes one from stock. No sufficiency guard exists; checkout may
// drive stock negative.
func (s *Session) Checkout(ctx context.Context) (domain.Receipt, error) {
	e := s.engine
	e.mu.Lock()
	defer e.mu.Unlock()

	if s.userID == 0 {
		return domain.Receipt{}, domain.ErrNotAuthenticated
	}
	if s.cart.Len() == 0 {
		return domain.Receipt{}, domain.ErrEmptyCart
	}

	total := s.cart.Total(e.lookupLocked)

	for _, id := range s.cart.DistinctIDs() {
		product, ok := e.products[id]
		if !ok {
			continue
		}
		product.Stock--
		e.persistProductLocked(ctx, product)
	}

	discount := domain.Discount(total)
	user := e.users[s.userID]
	user.LoyaltyPoints = domain.Round(user.LoyaltyPoints + discount)
	e.persistUserLocked(ctx, user)

	items := s.cart.Len()
	s.cart.Clear()

	e.afterStockMutationLocked(ctx)

	return domain.Receipt{
		Total:         total,
		Discount:      discount,
		Charged:       domain.Round(total - discount),
		LoyaltyEarned: discount,
		Items:         items,
		CompletedAt:   e.clock().UTC(),
	}, nil
}
