package domain

import (
	"context"
	"strings"
	"testing"

	"github.com/louisbranch/storefront/internal/services/shop/engine"
)

func newTestEngine(t *testing.T) *engine.Engine {
	t.Helper()
	eng, err := engine.New(context.Background(), engine.Options{
		Products: engine.SeedProducts(),
		Users:    engine.SeedUsers(),
	})
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return eng
}

func TestProductsListHandler(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(t)
	handler := ProductsListHandler(eng)

	_, result, err := handler(context.Background(), nil, ProductsListInput{})
	if err != nil {
		t.Fatalf("products list: %v", err)
	}
	if len(result.Products) != 5 {
		t.Fatalf("len(products) = %d, want 5", len(result.Products))
	}
	if result.Products[4].CurrentPrice != 90.0 {
		t.Fatalf("last product price = %v, want 90", result.Products[4].CurrentPrice)
	}
}

func TestLoginHandler(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(t)
	session := eng.NewSession()

	_, user, err := LoginHandler(session)(context.Background(), nil, LoginInput{Username: "user1"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.Username != "user1" || user.LoyaltyPoints != 10 {
		t.Fatalf("user = %+v, want user1 with 10 points", user)
	}

	_, _, err = LoginHandler(session)(context.Background(), nil, LoginInput{Username: "nobody"})
	if err == nil || !strings.Contains(err.Error(), "login failed") {
		t.Fatalf("err = %v, want login failure", err)
	}
}

func TestCartAndCheckoutHandlers(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(t)
	session := eng.NewSession()
	ctx := context.Background()

	if _, _, err := LoginHandler(session)(ctx, nil, LoginInput{Username: "user1"}); err != nil {
		t.Fatalf("login: %v", err)
	}
	_, cart, err := CartAddHandler(session)(ctx, nil, CartItemInput{ProductID: 5})
	if err != nil {
		t.Fatalf("cart add: %v", err)
	}
	if cart.Total != 90.0 {
		t.Fatalf("total = %v, want 90", cart.Total)
	}

	_, receipt, err := CheckoutHandler(session)(ctx, nil, CheckoutInput{})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if receipt.Charged != 85.5 || receipt.LoyaltyEarned != 4.5 {
		t.Fatalf("receipt = %+v, want 85.5 charged earning 4.5", receipt)
	}

	_, cart, err = CartViewHandler(session)(ctx, nil, CartViewInput{})
	if err != nil {
		t.Fatalf("cart view: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("items = %v, want empty cart after checkout", cart.Items)
	}
}

func TestCheckoutHandlerRequiresLogin(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(t)
	session := eng.NewSession()
	ctx := context.Background()

	if _, _, err := CartAddHandler(session)(ctx, nil, CartItemInput{ProductID: 1}); err != nil {
		t.Fatalf("cart add: %v", err)
	}
	_, _, err := CheckoutHandler(session)(ctx, nil, CheckoutInput{})
	if err == nil || !strings.Contains(err.Error(), "checkout failed") {
		t.Fatalf("err = %v, want checkout failure", err)
	}
}

func TestOperatorHandlers(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(t)
	session := eng.NewSession()
	ctx := context.Background()

	_, _, err := StockSetHandler(eng, session)(ctx, nil, StockSetInput{ProductID: 1, Stock: 5})
	if err == nil {
		t.Fatal("expected stock set to fail without operator mode")
	}

	_, mode, err := OperatorModeSetHandler(eng, session)(ctx, nil, OperatorModeSetInput{Enabled: true})
	if err != nil {
		t.Fatalf("operator mode set: %v", err)
	}
	if !mode.OperatorMode {
		t.Fatal("operator mode not enabled")
	}

	_, product, err := StockSetHandler(eng, session)(ctx, nil, StockSetInput{ProductID: 1, Stock: 5})
	if err != nil {
		t.Fatalf("stock set: %v", err)
	}
	if product.Stock != 5 || product.CurrentPrice != 30.0 {
		t.Fatalf("product = %+v, want stock 5 repriced to 30", product)
	}

	_, product, err = PriceSetHandler(eng, session)(ctx, nil, PriceSetInput{ProductID: 1, Price: 27.996})
	if err != nil {
		t.Fatalf("price set: %v", err)
	}
	if product.CurrentPrice != 28.0 {
		t.Fatalf("price = %v, want rounded override 28", product.CurrentPrice)
	}
}

func TestCartItemHandlersRequireProductID(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(t)
	session := eng.NewSession()
	ctx := context.Background()

	if _, _, err := CartAddHandler(session)(ctx, nil, CartItemInput{}); err == nil {
		t.Fatal("expected cart add to require product_id")
	}
	if _, _, err := CartRemoveHandler(session)(ctx, nil, CartItemInput{}); err == nil {
		t.Fatal("expected cart remove to require product_id")
	}
}
