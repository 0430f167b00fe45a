package engine

import (
	"context"

	"github.com/louisbranch/storefront/internal/services/shop/domain"
)

// ListProducts returns a snapshot of the catalog in creation order.
func (e *Engine) ListProducts() []domain.Product {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]domain.Product, 0, len(e.order))
	for _, id := range e.order {
		out = append(out, *e.products[id])
	}
	return out
}

// Product returns a snapshot of one catalog entry.
func (e *Engine) Product(id int64) (domain.Product, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	product, ok := e.products[id]
	if !ok {
		return domain.Product{}, false
	}
	return *product, true
}

// RestockNotice returns the most recent restock notification, if any.
// Only the last notice is retained; earlier ones are overwritten.
func (e *Engine) RestockNotice() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.restockNotice
}

// RepriceAll recomputes the current price of every product from its base
// price and stock. Manual operator price overrides are overwritten.
func (e *Engine) RepriceAll(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.repriceAllLocked(ctx)
}

func (e *Engine) repriceAllLocked(ctx context.Context) {
	for _, id := range e.order {
		product := e.products[id]
		price := domain.RecomputePrice(product.BasePrice, product.Stock)
		if price == product.CurrentPrice {
			continue
		}
		product.CurrentPrice = price
		e.persistProductLocked(ctx, product)
	}
}

func (e *Engine) lookupLocked(id int64) (domain.Product, bool) {
	product, ok := e.products[id]
	if !ok {
		return domain.Product{}, false
	}
	return *product, true
}
