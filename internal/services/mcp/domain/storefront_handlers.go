package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	shopdomain "github.com/louisbranch/storefront/internal/services/shop/domain"
	"github.com/louisbranch/storefront/internal/services/shop/engine"
)

func toProductView(product shopdomain.Product) ProductView {
	return ProductView{
		ID:           product.ID,
		Name:         product.Name,
		Description:  product.Description,
		BasePrice:    product.BasePrice,
		CurrentPrice: product.CurrentPrice,
		Stock:        product.Stock,
	}
}

// ProductsListHandler executes a catalog list request.
func ProductsListHandler(eng *engine.Engine) mcp.ToolHandlerFor[ProductsListInput, ProductsListResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ ProductsListInput) (*mcp.CallToolResult, ProductsListResult, error) {
		products := eng.ListProducts()
		result := ProductsListResult{
			Products:      make([]ProductView, 0, len(products)),
			RestockNotice: eng.RestockNotice(),
		}
		for _, product := range products {
			result.Products = append(result.Products, toProductView(product))
		}
		return nil, result, nil
	}
}

// LoginHandler executes a login request against the shared tool session.
func LoginHandler(session *engine.Session) mcp.ToolHandlerFor[LoginInput, UserResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input LoginInput) (*mcp.CallToolResult, UserResult, error) {
		user, err := session.Login(input.Username)
		if err != nil {
			return nil, UserResult{}, fmt.Errorf("login failed: %w", err)
		}
		return nil, UserResult{
			ID:            user.ID,
			Username:      user.Username,
			LoyaltyPoints: user.LoyaltyPoints,
		}, nil
	}
}

// LogoutHandler executes a logout request.
func LogoutHandler(session *engine.Session) mcp.ToolHandlerFor[LogoutInput, LogoutResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ LogoutInput) (*mcp.CallToolResult, LogoutResult, error) {
		session.Logout()
		return nil, LogoutResult{LoggedOut: true}, nil
	}
}

// OperatorModeSetHandler toggles operator mode for the tool session.
func OperatorModeSetHandler(eng *engine.Engine, session *engine.Session) mcp.ToolHandlerFor[OperatorModeSetInput, OperatorModeSetResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input OperatorModeSetInput) (*mcp.CallToolResult, OperatorModeSetResult, error) {
		session.SetOperatorMode(ctx, input.Enabled)
		return nil, OperatorModeSetResult{
			OperatorMode:  session.OperatorMode(),
			RestockNotice: eng.RestockNotice(),
		}, nil
	}
}

func cartResult(session *engine.Session) CartResult {
	items := session.CartItems()
	if items == nil {
		items = []int64{}
	}
	return CartResult{
		Items:           items,
		Total:           session.CartTotal(),
		DiscountedTotal: session.DiscountedTotal(),
	}
}

// CartAddHandler appends a product reference to the tool session cart.
func CartAddHandler(session *engine.Session) mcp.ToolHandlerFor[CartItemInput, CartResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CartItemInput) (*mcp.CallToolResult, CartResult, error) {
		if input.ProductID <= 0 {
			return nil, CartResult{}, fmt.Errorf("product_id is required")
		}
		session.AddToCart(input.ProductID)
		return nil, cartResult(session), nil
	}
}

// CartRemoveHandler drops every occurrence of a product from the cart.
func CartRemoveHandler(session *engine.Session) mcp.ToolHandlerFor[CartItemInput, CartResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CartItemInput) (*mcp.CallToolResult, CartResult, error) {
		if input.ProductID <= 0 {
			return nil, CartResult{}, fmt.Errorf("product_id is required")
		}
		session.RemoveFromCart(input.ProductID)
		return nil, cartResult(session), nil
	}
}

// CartViewHandler returns the tool session cart.
func CartViewHandler(session *engine.Session) mcp.ToolHandlerFor[CartViewInput, CartResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ CartViewInput) (*mcp.CallToolResult, CartResult, error) {
		return nil, cartResult(session), nil
	}
}

// CheckoutHandler settles the tool session cart.
func CheckoutHandler(session *engine.Session) mcp.ToolHandlerFor[CheckoutInput, CheckoutResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ CheckoutInput) (*mcp.CallToolResult, CheckoutResult, error) {
		receipt, err := session.Checkout(ctx)
		if err != nil {
			return nil, CheckoutResult{}, fmt.Errorf("checkout failed: %w", err)
		}
		return nil, CheckoutResult{
			Total:         receipt.Total,
			Discount:      receipt.Discount,
			Charged:       receipt.Charged,
			LoyaltyEarned: receipt.LoyaltyEarned,
			Items:         receipt.Items,
			CompletedAt:   receipt.CompletedAt.Format(time.RFC3339),
		}, nil
	}
}

// StockSetHandler executes the operator stock override.
func StockSetHandler(eng *engine.Engine, session *engine.Session) mcp.ToolHandlerFor[StockSetInput, ProductView] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input StockSetInput) (*mcp.CallToolResult, ProductView, error) {
		if err := session.SetStock(ctx, input.ProductID, input.Stock); err != nil {
			return nil, ProductView{}, fmt.Errorf("stock set failed: %w", err)
		}
		product, ok := eng.Product(input.ProductID)
		if !ok {
			return nil, ProductView{}, fmt.Errorf("product %d is missing after update", input.ProductID)
		}
		return nil, toProductView(product), nil
	}
}

// PriceSetHandler executes the operator price override.
func PriceSetHandler(eng *engine.Engine, session *engine.Session) mcp.ToolHandlerFor[PriceSetInput, ProductView] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input PriceSetInput) (*mcp.CallToolResult, ProductView, error) {
		if err := session.SetPrice(ctx, input.ProductID, input.Price); err != nil {
			return nil, ProductView{}, fmt.Errorf("price set failed: %w", err)
		}
		product, ok := eng.Product(input.ProductID)
		if !ok {
			return nil, ProductView{}, fmt.Errorf("product %d is missing after update", input.ProductID)
		}
		return nil, toProductView(product), nil
	}
}
