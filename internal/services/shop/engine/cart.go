package engine

import "github.com/louisbranch/storefront/internal/services/shop/domain"

// AddToCart appends a product reference to the session cart. The reference
// is not checked for existence; dangling IDs are skipped at total time.
func (s *Session) AddToCart(productID int64) {
	e := s.engine
	e.mu.Lock()
	defer e.mu.Unlock()
	s.cart.Add(productID)
}

// RemoveFromCart drops every occurrence of the product from the cart.
func (s *Session) RemoveFromCart(productID int64) {
	e := s.engine
	e.mu.Lock()
	defer e.mu.Unlock()
	s.cart.Remove(productID)
}

// CartItems returns the cart entries in insertion order.
func (s *Session) CartItems() []int64 {
	e := s.engine
	e.mu.Lock()
	defer e.mu.Unlock()
	return s.cart.Items()
}

// CartTotal sums the current price of every resolvable cart entry.
func (s *Session) CartTotal() float64 {
	e := s.engine
	e.mu.Lock()
	defer e.mu.Unlock()
	return s.cart.Total(e.lookupLocked)
}

// DiscountedTotal is the cart total with the loyalty discount applied when
// a user is logged in; anonymous sessions see the plain total.
func (s *Session) DiscountedTotal() float64 {
	e := s.engine
	e.mu.Lock()
	defer e.mu.Unlock()

	total := s.cart.Total(e.lookupLocked)
	return domain.DiscountedTotal(total, s.userID != 0)
}
