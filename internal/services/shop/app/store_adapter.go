package server

import (
	"context"

	"github.com/louisbranch/storefront/internal/services/shop/domain"
	"github.com/louisbranch/storefront/internal/services/shop/engine"
	"github.com/louisbranch/storefront/internal/services/shop/storage"
)

// storeAdapter exposes a storage.Store through the engine persistence
// contract, translating between storage records and domain values.
type storeAdapter struct {
	store storage.Store
}

func (a storeAdapter) LoadProducts(ctx context.Context) ([]domain.Product, error) {
	records, err := a.store.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	products := make([]domain.Product, 0, len(records))
	for _, record := range records {
		products = append(products, domain.Product{
			ID:           record.ID,
			Name:         record.Name,
			Description:  record.Description,
			ImageURL:     record.ImageURL,
			BasePrice:    record.BasePrice,
			CurrentPrice: record.CurrentPrice,
			Stock:        record.Stock,
		})
	}
	return products, nil
}

func (a storeAdapter) LoadUsers(ctx context.Context) ([]domain.User, error) {
	records, err := a.store.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	users := make([]domain.User, 0, len(records))
	for _, record := range records {
		users = append(users, domain.User{
			ID:            record.ID,
			Username:      record.Username,
			LoyaltyPoints: record.LoyaltyPoints,
		})
	}
	return users, nil
}

func (a storeAdapter) SaveProduct(ctx context.Context, product domain.Product) error {
	return a.store.UpsertProduct(ctx, storage.ProductRecord{
		ID:           product.ID,
		Name:         product.Name,
		Description:  product.Description,
		ImageURL:     product.ImageURL,
		BasePrice:    product.BasePrice,
		CurrentPrice: product.CurrentPrice,
		Stock:        product.Stock,
	})
}

func (a storeAdapter) SaveUser(ctx context.Context, user domain.User) error {
	return a.store.UpsertUser(ctx, storage.UserRecord{
		ID:            user.ID,
		Username:      user.Username,
		LoyaltyPoints: user.LoyaltyPoints,
	})
}

var _ engine.Store = storeAdapter{}
