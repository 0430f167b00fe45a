package engine

import (
	"context"
	"testing"

	"github.com/louisbranch/storefront/internal/services/shop/domain"
)

func TestOperatorModeActivationRestocks(t *testing.T) {
	t.Parallel()

	e, err := New(context.Background(), Options{
		Products: []domain.Product{
			{ID: 1, Name: "Cool Mug", BasePrice: 15.0, Stock: 5},
		},
	})
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	product, _ := e.Product(1)
	if product.CurrentPrice != 18.0 {
		t.Fatalf("pre-restock price = %v, want 18 with the scarcity surcharge", product.CurrentPrice)
	}

	session := e.NewSession()
	session.SetOperatorMode(context.Background(), true)

	product, _ = e.Product(1)
	if product.Stock != 15 {
		t.Fatalf("stock = %d, want 15", product.Stock)
	}
	if product.CurrentPrice != 15.0 {
		t.Fatalf("price = %v, want base price after restock", product.CurrentPrice)
	}
	if got, want := e.RestockNotice(), `Product "Cool Mug" has been restocked.`; got != want {
		t.Fatalf("notice = %q, want %q", got, want)
	}
}

func TestRestockSkipsExpensiveAndStockedProducts(t *testing.T) {
	t.Parallel()

	// The demo catalog has no qualifying product: the only scarce one is
	// too expensive, the cheap ones are all at or above the threshold.
	e := newTestEngine(t)
	session := e.NewSession()
	session.SetOperatorMode(context.Background(), true)

	want := map[int64]int{1: 50, 2: 30, 3: 20, 4: 10, 5: 5}
	for _, product := range e.ListProducts() {
		if product.Stock != want[product.ID] {
			t.Fatalf("product %d stock = %d, want %d", product.ID, product.Stock, want[product.ID])
		}
	}
	if got := e.RestockNotice(); got != "" {
		t.Fatalf("notice = %q, want none", got)
	}
}

func TestRestockNoticeKeepsOnlyTheLast(t *testing.T) {
	t.Parallel()

	e, err := New(context.Background(), Options{
		Products: []domain.Product{
			{ID: 1, Name: "First", BasePrice: 10.0, Stock: 2},
			{ID: 2, Name: "Second", BasePrice: 12.0, Stock: 3},
		},
	})
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	session := e.NewSession()
	session.SetOperatorMode(context.Background(), true)

	if got, want := e.RestockNotice(), `Product "Second" has been restocked.`; got != want {
		t.Fatalf("notice = %q, want %q", got, want)
	}
}

func TestRestockDoesNotReapplyAboveThreshold(t *testing.T) {
	t.Parallel()

	e, err := New(context.Background(), Options{
		Products: []domain.Product{
			{ID: 1, Name: "Cool Mug", BasePrice: 15.0, Stock: 5},
		},
	})
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	session := e.NewSession()
	session.SetOperatorMode(context.Background(), true)
	session.SetOperatorMode(context.Background(), false)
	session.SetOperatorMode(context.Background(), true)

	product, _ := e.Product(1)
	if product.Stock != 15 {
		t.Fatalf("stock = %d, want a single restock to 15", product.Stock)
	}
}

func TestRestockStopsWhenOperatorModeEnds(t *testing.T) {
	t.Parallel()

	e, err := New(context.Background(), Options{
		Products: []domain.Product{
			{ID: 1, Name: "Cheap Widget", BasePrice: 15.0, Stock: 12},
		},
		Users: SeedUsers(),
	})
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	operator := e.NewSession()
	operator.SetOperatorMode(context.Background(), true)
	operator.SetOperatorMode(context.Background(), false)

	shopper := e.NewSession()
	if _, err := shopper.Login("user1"); err != nil {
		t.Fatalf("login: %v", err)
	}
	for i := 0; i < 3; i++ {
		shopper.AddToCart(1)
		if _, err := shopper.Checkout(context.Background()); err != nil {
			t.Fatalf("checkout %d: %v", i, err)
		}
	}

	product, _ := e.Product(1)
	if product.Stock != 9 {
		t.Fatalf("stock = %d, want 9 with no restock while operator mode is off", product.Stock)
	}
}
