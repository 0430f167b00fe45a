// Package storage defines persistence contracts for storefront state.
package storage

import "context"

// ProductRecord stores one catalog product snapshot. Current price is
// persisted alongside base price so a reloaded catalog renders without
// waiting for the first recompute.
type ProductRecord struct {
	ID           int64
	Name         string
	Description  string
	ImageURL     string
	BasePrice    float64
	CurrentPrice float64
	Stock        int
}

// UserRecord stores one registered user snapshot.
type UserRecord struct {
	ID            int64
	Username      string
	LoyaltyPoints float64
}

// CatalogStore persists catalog product records. The engine snapshots
// whole records write-through and reloads the full catalog at startup, so
// the contract is upsert and list only.
type CatalogStore interface {
	UpsertProduct(ctx context.Context, product ProductRecord) error
	ListProducts(ctx context.Context) ([]ProductRecord, error)
}

// UserStore persists user directory records.
type UserStore interface {
	UpsertUser(ctx context.Context, user UserRecord) error
	ListUsers(ctx context.Context) ([]UserRecord, error)
}

// Store combines catalog and user persistence.
type Store interface {
	CatalogStore
	UserStore
}
