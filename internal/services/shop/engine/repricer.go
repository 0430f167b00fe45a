package engine

import (
	"context"
	"time"
)

// DefaultRepriceInterval is the cadence of the scheduled price recompute.
const DefaultRepriceInterval = 15 * time.Second

// RunRepricing recomputes all prices on a fixed cadence until the context
// is cancelled. Together with the on-mutation hook this forms the complete
// trigger set for price derivation; both paths funnel into the same
// single-writer recompute.
func (e *Engine) RunRepricing(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultRepriceInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			e.RepriceAll(ctx)
		}
	}
}
