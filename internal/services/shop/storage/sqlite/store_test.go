package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/louisbranch/storefront/internal/services/shop/storage"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "storefront.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	return store
}

func findProduct(t *testing.T, store *Store, id int64) storage.ProductRecord {
	t.Helper()
	products, err := store.ListProducts(context.Background())
	if err != nil {
		t.Fatalf("list products: %v", err)
	}
	for _, product := range products {
		if product.ID == id {
			return product
		}
	}
	t.Fatalf("product %d not in store", id)
	return storage.ProductRecord{}
}

func findUser(t *testing.T, store *Store, id int64) storage.UserRecord {
	t.Helper()
	users, err := store.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	for _, user := range users {
		if user.ID == id {
			return user
		}
	}
	t.Fatalf("user %d not in store", id)
	return storage.UserRecord{}
}

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open("  "); err == nil {
		t.Fatal("expected error for blank path")
	}
}

func TestProductRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	product := storage.ProductRecord{
		ID:           1,
		Name:         "Awesome T-Shirt",
		Description:  "A really awesome T-shirt",
		ImageURL:     "https://placehold.co/150x150",
		BasePrice:    25.0,
		CurrentPrice: 22.5,
		Stock:        50,
	}
	if err := store.UpsertProduct(ctx, product); err != nil {
		t.Fatalf("upsert product: %v", err)
	}

	if got := findProduct(t, store, 1); got != product {
		t.Fatalf("product = %+v, want %+v", got, product)
	}
}

func TestUpsertProductReplacesExistingRow(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	product := storage.ProductRecord{ID: 2, Name: "Cool Mug", BasePrice: 15.0, CurrentPrice: 15.0, Stock: 30}
	if err := store.UpsertProduct(ctx, product); err != nil {
		t.Fatalf("upsert product: %v", err)
	}

	product.CurrentPrice = 18.0
	product.Stock = 5
	if err := store.UpsertProduct(ctx, product); err != nil {
		t.Fatalf("upsert product again: %v", err)
	}

	got := findProduct(t, store, 2)
	if got.Stock != 5 || got.CurrentPrice != 18.0 {
		t.Fatalf("product = %+v, want updated stock and price", got)
	}
}

func TestListProductsOrdersByID(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	for _, product := range []storage.ProductRecord{
		{ID: 3, Name: "Stylish Hat", BasePrice: 20.0, CurrentPrice: 20.0, Stock: 20},
		{ID: 1, Name: "Awesome T-Shirt", BasePrice: 25.0, CurrentPrice: 22.5, Stock: 50},
		{ID: 2, Name: "Cool Mug", BasePrice: 15.0, CurrentPrice: 15.0, Stock: 30},
	} {
		if err := store.UpsertProduct(ctx, product); err != nil {
			t.Fatalf("upsert product %d: %v", product.ID, err)
		}
	}

	products, err := store.ListProducts(ctx)
	if err != nil {
		t.Fatalf("list products: %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("len(products) = %d, want 3", len(products))
	}
	for i, want := range []int64{1, 2, 3} {
		if products[i].ID != want {
			t.Fatalf("products[%d].ID = %d, want %d", i, products[i].ID, want)
		}
	}
}

func TestListProductsEmptyStore(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)

	products, err := store.ListProducts(context.Background())
	if err != nil {
		t.Fatalf("list products: %v", err)
	}
	if len(products) != 0 {
		t.Fatalf("len(products) = %d, want 0", len(products))
	}
}

func TestUpsertProductValidation(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	if err := store.UpsertProduct(ctx, storage.ProductRecord{Name: "No ID"}); err == nil {
		t.Fatal("expected error for missing product id")
	}
	if err := store.UpsertProduct(ctx, storage.ProductRecord{ID: 1}); err == nil {
		t.Fatal("expected error for missing product name")
	}
}

func TestUserRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	user := storage.UserRecord{ID: 1, Username: "user1", LoyaltyPoints: 10}
	if err := store.UpsertUser(ctx, user); err != nil {
		t.Fatalf("upsert user: %v", err)
	}

	user.LoyaltyPoints = 14.5
	if err := store.UpsertUser(ctx, user); err != nil {
		t.Fatalf("upsert user again: %v", err)
	}

	if got := findUser(t, store, 1); got != user {
		t.Fatalf("user = %+v, want %+v", got, user)
	}
}

func TestListUsersOrdersByID(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	for _, user := range []storage.UserRecord{
		{ID: 2, Username: "user2", LoyaltyPoints: 25},
		{ID: 1, Username: "user1", LoyaltyPoints: 10},
	} {
		if err := store.UpsertUser(ctx, user); err != nil {
			t.Fatalf("upsert user %d: %v", user.ID, err)
		}
	}

	users, err := store.ListUsers(ctx)
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(users) != 2 || users[0].ID != 1 || users[1].ID != 2 {
		t.Fatalf("users = %+v, want ordered by id", users)
	}
}

func TestReopenKeepsState(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "storefront.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	ctx := context.Background()
	if err := store.UpsertProduct(ctx, storage.ProductRecord{ID: 5, Name: "Sneaky Shoes", BasePrice: 75.0, CurrentPrice: 90.0, Stock: 5}); err != nil {
		t.Fatalf("upsert product: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer reopened.Close()

	got := findProduct(t, reopened, 5)
	if got.Stock != 5 || got.CurrentPrice != 90.0 {
		t.Fatalf("product = %+v, want persisted snapshot", got)
	}
}
