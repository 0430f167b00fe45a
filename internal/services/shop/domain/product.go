// Package domain holds the pure types and rules of the storefront engine:
// products and pricing, users and loyalty, carts, receipts, and the restock
// policy. Everything here is side-effect free; the engine package applies
// these rules under its single-writer discipline.
package domain

import (
	"errors"
	"math"
	"strings"
)

var (
	// ErrProductIDRequired indicates a missing or non-positive product ID.
	ErrProductIDRequired = errors.New("product id is required")
	// ErrProductNameRequired indicates a missing product name.
	ErrProductNameRequired = errors.New("product name is required")
	// ErrProductNotFound indicates a product ID that resolves to nothing.
	ErrProductNotFound = errors.New("product not found")
	// ErrInvalidInput indicates a malformed numeric value in an operator override.
	ErrInvalidInput = errors.New("invalid numeric input")
)

// Product is one catalog entry. ID and BasePrice are immutable after
// creation; CurrentPrice is derived from BasePrice and Stock by the pricing
// rules and is rewritten on every recompute, operator overrides included.
type Product struct {
	ID           int64
	Name         string
	Description  string
	ImageURL     string
	BasePrice    float64
	CurrentPrice float64
	Stock        int
}

// NewProductInput describes the data needed to create a catalog entry.
type NewProductInput struct {
	ID          int64
	Name        string
	Description string
	ImageURL    string
	BasePrice   float64
	Stock       int
}

// NewProduct validates input and returns a product with its current price
// derived from the pricing rules.
func NewProduct(input NewProductInput) (Product, error) {
	if input.ID <= 0 {
		return Product{}, ErrProductIDRequired
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return Product{}, ErrProductNameRequired
	}
	if !ValidPrice(input.BasePrice) {
		return Product{}, ErrInvalidInput
	}
	if input.Stock < 0 {
		return Product{}, ErrInvalidInput
	}
	return Product{
		ID:           input.ID,
		Name:         name,
		Description:  strings.TrimSpace(input.Description),
		ImageURL:     strings.TrimSpace(input.ImageURL),
		BasePrice:    input.BasePrice,
		CurrentPrice: RecomputePrice(input.BasePrice, input.Stock),
		Stock:        input.Stock,
	}, nil
}

// ValidPrice reports whether a value is usable as a currency amount.
func ValidPrice(value float64) bool {
	return value >= 0 && !math.IsNaN(value) && !math.IsInf(value, 0)
}
