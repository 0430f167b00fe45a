// Package engine implements the storefront state-transition engine.
//
// The engine is the single owner of catalog and user-directory state.
// Every mutation — session actions, the scheduled repricing task, the
// restock sweep — funnels through one mutex, so no reader ever observes a
// partial mutation. Authoritative state lives in memory, matching the
// simulation's reset-on-restart model; an optional store persists snapshots
// write-through so a configured deployment can reload them at startup.
package engine

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/louisbranch/storefront/internal/services/shop/domain"
)

// Store is the optional persistence boundary for engine state.
type Store interface {
	LoadProducts(ctx context.Context) ([]domain.Product, error)
	LoadUsers(ctx context.Context) ([]domain.User, error)
	SaveProduct(ctx context.Context, product domain.Product) error
	SaveUser(ctx context.Context, user domain.User) error
}

// Options configures engine construction.
type Options struct {
	// Store enables write-through persistence. Nil runs memory-only.
	Store Store
	// Clock stamps receipts. Defaults to time.Now.
	Clock func() time.Time
	// Products seeds the catalog when the store is absent or empty.
	Products []domain.Product
	// Users seeds the user directory when the store is absent or empty.
	Users []domain.User
}

// Engine owns the catalog and user directory and serializes all mutations.
type Engine struct {
	mu               sync.Mutex
	products         map[int64]*domain.Product
	order            []int64
	users            map[int64]*domain.User
	usersByName      map[string]int64
	operatorSessions int
	restockNotice    string
	store            Store
	clock            func() time.Time
}

// New builds an engine from seed data, loading previously persisted state
// instead when a store is configured and non-empty. Prices are recomputed
// once before the engine is returned.
func New(ctx context.Context, opts Options) (*Engine, error) {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	e := &Engine{
		products:    make(map[int64]*domain.Product),
		users:       make(map[int64]*domain.User),
		usersByName: make(map[string]int64),
		store:       opts.Store,
		clock:       opts.Clock,
	}

	products, users, err := e.initialState(ctx, opts)
	if err != nil {
		return nil, err
	}
	for _, product := range products {
		if _, exists := e.products[product.ID]; exists {
			return nil, fmt.Errorf("duplicate product id %d", product.ID)
		}
		p := product
		e.products[p.ID] = &p
		e.order = append(e.order, p.ID)
	}
	for _, user := range users {
		if _, exists := e.users[user.ID]; exists {
			return nil, fmt.Errorf("duplicate user id %d", user.ID)
		}
		if _, exists := e.usersByName[user.Username]; exists {
			return nil, fmt.Errorf("duplicate username %q", user.Username)
		}
		u := user
		e.users[u.ID] = &u
		e.usersByName[u.Username] = u.ID
	}

	e.mu.Lock()
	e.repriceAllLocked(ctx)
	e.mu.Unlock()
	return e, nil
}

// initialState prefers persisted state over seed data. A store that holds
// no products and no users is treated as fresh and receives the seeds.
func (e *Engine) initialState(ctx context.Context, opts Options) ([]domain.Product, []domain.User, error) {
	if e.store == nil {
		return opts.Products, opts.Users, nil
	}

	products, err := e.store.LoadProducts(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load products: %w", err)
	}
	users, err := e.store.LoadUsers(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load users: %w", err)
	}
	if len(products) > 0 || len(users) > 0 {
		return products, users, nil
	}

	for _, product := range opts.Products {
		if err := e.store.SaveProduct(ctx, product); err != nil {
			return nil, nil, fmt.Errorf("seed product %d: %w", product.ID, err)
		}
	}
	for _, user := range opts.Users {
		if err := e.store.SaveUser(ctx, user); err != nil {
			return nil, nil, fmt.Errorf("seed user %d: %w", user.ID, err)
		}
	}
	return opts.Products, opts.Users, nil
}

// persistProductLocked writes one product snapshot through the store.
// Memory stays authoritative; a failed write is logged, not propagated.
func (e *Engine) persistProductLocked(ctx context.Context, product *domain.Product) {
	if e.store == nil {
		return
	}
	if err := e.store.SaveProduct(ctx, *product); err != nil {
		log.Printf("save product %d: %v", product.ID, err)
	}
}

func (e *Engine) persistUserLocked(ctx context.Context, user *domain.User) {
	if e.store == nil {
		return
	}
	if err := e.store.SaveUser(ctx, *user); err != nil {
		log.Printf("save user %d: %v", user.ID, err)
	}
}

// afterStockMutationLocked runs the reactions every stock change triggers:
// a restock sweep while operator mode is active anywhere, then a full price
// recompute from the resulting state.
func (e *Engine) afterStockMutationLocked(ctx context.Context) {
	if e.operatorSessions > 0 {
		e.restockSweepLocked(ctx)
	}
	e.repriceAllLocked(ctx)
}
