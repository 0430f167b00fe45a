package engine

import (
	"context"

	"github.com/louisbranch/storefront/internal/services/shop/domain"
)

// restockSweepLocked scans the whole catalog and restocks every product the
// restock rule selects. The sweep is level-triggered: it runs on operator
// mode activation and after every stock mutation while operator mode is
// active, and re-fires for as long as a product stays in the qualifying
// band. One increment lifts stock past the threshold, so in practice a
// single firing resolves a product, but nothing here depends on that.
//
// Returns the number of products restocked.
func (e *Engine) restockSweepLocked(ctx context.Context) int {
	restocked := 0
	for _, id := range e.order {
		product := e.products[id]
		if !domain.NeedsRestock(*product) {
			continue
		}
		product.Stock += domain.RestockIncrement
		e.restockNotice = domain.RestockNotice(product.Name)
		e.persistProductLocked(ctx, product)
		restocked++
	}
	return restocked
}
