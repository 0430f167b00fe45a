package engine

import (
	"context"
	"strings"

	"github.com/louisbranch/storefront/internal/services/shop/domain"
)

// Session is one client's view of the engine: an optional logged-in user,
// an operator-mode flag, and a cart of weak product references. Sessions
// are not persisted and reset on restart. All session state is guarded by
// the engine mutex, so sessions are safe for concurrent use.
type Session struct {
	engine   *Engine
	userID   int64
	operator bool
	cart     domain.Cart
}

// NewSession creates an anonymous session with an empty cart.
func (e *Engine) NewSession() *Session {
	return &Session{engine: e}
}

// Login binds the session to the registered user with the given username.
// The lookup is an exact string match; a miss leaves session state
// untouched and returns domain.ErrInvalidUsername.
func (s *Session) Login(username string) (domain.User, error) {
	e := s.engine
	e.mu.Lock()
	defer e.mu.Unlock()

	id, ok := e.usersByName[strings.TrimSpace(username)]
	if !ok {
		return domain.User{}, domain.ErrInvalidUsername
	}
	s.userID = id
	return *e.users[id], nil
}

// Logout clears the session user and drops operator mode.
func (s *Session) Logout() {
	e := s.engine
	e.mu.Lock()
	defer e.mu.Unlock()

	s.userID = 0
	if s.operator {
		s.operator = false
		e.operatorSessions--
	}
}

// User returns a snapshot of the logged-in user, if any.
func (s *Session) User() (domain.User, bool) {
	e := s.engine
	e.mu.Lock()
	defer e.mu.Unlock()

	return s.userLocked()
}

func (s *Session) userLocked() (domain.User, bool) {
	if s.userID == 0 {
		return domain.User{}, false
	}
	user, ok := s.engine.users[s.userID]
	if !ok {
		return domain.User{}, false
	}
	return *user, true
}

// OperatorMode reports whether this session has operator mode active.
func (s *Session) OperatorMode() bool {
	e := s.engine
	e.mu.Lock()
	defer e.mu.Unlock()
	return s.operator
}

// SetOperatorMode toggles operator mode for this session. Activating it
// runs a restock sweep immediately; the sweep then re-runs after every
// stock mutation for as long as any session keeps operator mode active.
func (s *Session) SetOperatorMode(ctx context.Context, enabled bool) {
	e := s.engine
	e.mu.Lock()
	defer e.mu.Unlock()

	if enabled && !s.operator {
		e.operatorSessions++
	}
	if !enabled && s.operator {
		e.operatorSessions--
	}
	s.operator = enabled

	if enabled {
		if e.restockSweepLocked(ctx) > 0 {
			e.repriceAllLocked(ctx)
		}
	}
}

// SetStock is a direct operator override of one product's stock level.
// It triggers the restock sweep and the pricing recompute like any other
// stock mutation, so the written value may be immediately adjusted.
func (s *Session) SetStock(ctx context.Context, productID int64, stock int) error {
	e := s.engine
	e.mu.Lock()
	defer e.mu.Unlock()

	if !s.operator {
		return domain.ErrOperatorRequired
	}
	product, ok := e.products[productID]
	if !ok {
		return domain.ErrProductNotFound
	}
	if stock < 0 {
		return domain.ErrInvalidInput
	}

	product.Stock = stock
	e.persistProductLocked(ctx, product)
	e.afterStockMutationLocked(ctx)
	return nil
}

// SetPrice is a direct operator override of one product's current price.
// The override survives only until the next pricing recompute, which
// rewrites every current price from base price and stock.
func (s *Session) SetPrice(ctx context.Context, productID int64, price float64) error {
	e := s.engine
	e.mu.Lock()
	defer e.mu.Unlock()

	if !s.operator {
		return domain.ErrOperatorRequired
	}
	product, ok := e.products[productID]
	if !ok {
		return domain.ErrProductNotFound
	}
	if !domain.ValidPrice(price) {
		return domain.ErrInvalidInput
	}

	product.CurrentPrice = domain.Round(price)
	e.persistProductLocked(ctx, product)
	return nil
}
