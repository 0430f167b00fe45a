package engine

import "github.com/louisbranch/storefront/internal/services/shop/domain"

const seedImageURL = "https://placehold.co/150x150"

// SeedProducts returns the demo catalog used when no persisted state exists.
func SeedProducts() []domain.Product {
	return []domain.Product{
		seedProduct(1, "Awesome T-Shirt", "A really awesome T-shirt", 25.0, 50),
		seedProduct(2, "Cool Mug", "A very cool mug", 15.0, 30),
		seedProduct(3, "Stylish Hat", "A super stylish hat", 20.0, 20),
		seedProduct(4, "Fancy Pants", "Some fancy pants", 50.0, 10),
		seedProduct(5, "Sneaky Shoes", "Sneaky shoes", 75.0, 5),
	}
}

// SeedUsers returns the demo user directory.
func SeedUsers() []domain.User {
	return []domain.User{
		{ID: 1, Username: "user1", LoyaltyPoints: 10},
		{ID: 2, Username: "user2", LoyaltyPoints: 25},
	}
}

func seedProduct(id int64, name, description string, basePrice float64, stock int) domain.Product {
	return domain.Product{
		ID:           id,
		Name:         name,
		Description:  description,
		ImageURL:     seedImageURL,
		BasePrice:    basePrice,
		CurrentPrice: domain.RecomputePrice(basePrice, stock),
		Stock:        stock,
	}
}
