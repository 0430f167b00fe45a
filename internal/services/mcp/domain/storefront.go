package domain

import "github.com/modelcontextprotocol/go-sdk/mcp"

// ProductsListInput represents the MCP tool input for listing products.
type ProductsListInput struct{}

// ProductView represents one catalog product in tool results.
type ProductView struct {
	ID           int64   `json:"id" jsonschema:"product identifier"`
	Name         string  `json:"name" jsonschema:"product name"`
	Description  string  `json:"description,omitempty" jsonschema:"product description"`
	BasePrice    float64 `json:"base_price" jsonschema:"stable base price"`
	CurrentPrice float64 `json:"current_price" jsonschema:"derived display price"`
	Stock        int     `json:"stock" jsonschema:"units in stock"`
}

// ProductsListResult represents the MCP tool output for listing products.
type ProductsListResult struct {
	Products      []ProductView `json:"products" jsonschema:"catalog in creation order"`
	RestockNotice string        `json:"restock_notice,omitempty" jsonschema:"most recent restock notification"`
}

// LoginInput represents the MCP tool input for logging in.
type LoginInput struct {
	Username string `json:"username" jsonschema:"exact username to log in as"`
}

// UserResult represents the logged-in user in tool results.
type UserResult struct {
	ID            int64   `json:"id" jsonschema:"user identifier"`
	Username      string  `json:"username" jsonschema:"username"`
	LoyaltyPoints float64 `json:"loyalty_points" jsonschema:"accumulated loyalty points"`
}

// LogoutInput represents the MCP tool input for logging out.
type LogoutInput struct{}

// LogoutResult represents the MCP tool output for logging out.
type LogoutResult struct {
	LoggedOut bool `json:"logged_out" jsonschema:"whether the session user was cleared"`
}

// OperatorModeSetInput represents the MCP tool input for toggling operator mode.
type OperatorModeSetInput struct {
	Enabled bool `json:"enabled" jsonschema:"desired operator mode state"`
}

// OperatorModeSetResult represents the MCP tool output for toggling operator mode.
type OperatorModeSetResult struct {
	OperatorMode  bool   `json:"operator_mode" jsonschema:"operator mode state after the change"`
	RestockNotice string `json:"restock_notice,omitempty" jsonschema:"restock notification triggered by activation"`
}

// CartItemInput represents the MCP tool input for cart add and remove.
type CartItemInput struct {
	ProductID int64 `json:"product_id" jsonschema:"product identifier"`
}

// CartViewInput represents the MCP tool input for viewing the cart.
type CartViewInput struct{}

// CartResult represents the MCP tool output for cart operations.
type CartResult struct {
	Items           []int64 `json:"items" jsonschema:"product ids in insertion order"`
	Total           float64 `json:"total" jsonschema:"sum of current prices"`
	DiscountedTotal float64 `json:"discounted_total" jsonschema:"total with the loyalty discount when logged in"`
}

// CheckoutInput represents the MCP tool input for checkout.
type CheckoutInput struct{}

// CheckoutResult represents the MCP tool output for checkout.
type CheckoutResult struct {
	Total         float64 `json:"total" jsonschema:"cart total before discount"`
	Discount      float64 `json:"discount" jsonschema:"loyalty discount amount"`
	Charged       float64 `json:"charged" jsonschema:"amount charged after discount"`
	LoyaltyEarned float64 `json:"loyalty_earned" jsonschema:"loyalty points credited"`
	Items         int     `json:"items" jsonschema:"number of cart entries settled"`
	CompletedAt   string  `json:"completed_at" jsonschema:"completion time in RFC 3339"`
}

// StockSetInput represents the MCP tool input for the stock override.
type StockSetInput struct {
	ProductID int64 `json:"product_id" jsonschema:"product identifier"`
	Stock     int   `json:"stock" jsonschema:"new stock level, must not be negative"`
}

// PriceSetInput represents the MCP tool input for the price override.
type PriceSetInput struct {
	ProductID int64   `json:"product_id" jsonschema:"product identifier"`
	Price     float64 `json:"price" jsonschema:"new current price, must not be negative"`
}

// ProductsListTool defines the MCP tool schema for listing products.
func ProductsListTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "products_list",
		Description: "Lists the catalog with current prices, stock levels, and any restock notice",
	}
}

// LoginTool defines the MCP tool schema for logging in.
func LoginTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "login",
		Description: "Logs the session in as a registered user by exact username",
	}
}

// LogoutTool defines the MCP tool schema for logging out.
func LogoutTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "logout",
		Description: "Clears the session user and drops operator mode",
	}
}

// OperatorModeSetTool defines the MCP tool schema for toggling operator mode.
func OperatorModeSetTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "operator_mode_set",
		Description: "Toggles operator mode; activation runs an immediate restock sweep",
	}
}

// CartAddTool defines the MCP tool schema for adding a cart item.
func CartAddTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "cart_add",
		Description: "Adds a product reference to the cart",
	}
}

// CartRemoveTool defines the MCP tool schema for removing cart items.
func CartRemoveTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "cart_remove",
		Description: "Removes every occurrence of a product from the cart",
	}
}

// CartViewTool defines the MCP tool schema for viewing the cart.
func CartViewTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "cart_view",
		Description: "Shows the cart entries with total and discounted total",
	}
}

// CheckoutTool defines the MCP tool schema for checkout.
func CheckoutTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "checkout",
		Description: "Settles the cart: decrements stock, credits loyalty points, and clears the cart",
	}
}

// StockSetTool defines the MCP tool schema for the stock override.
func StockSetTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "stock_set",
		Description: "Operator override of one product's stock level",
	}
}

// PriceSetTool defines the MCP tool schema for the price override.
func PriceSetTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "price_set",
		Description: "Operator override of one product's current price, until the next recompute",
	}
}
