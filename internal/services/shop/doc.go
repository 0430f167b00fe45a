// Package shop contains the internal service boundary for the storefront
// simulation.
//
// The service owns the pricing/inventory/checkout state-transition engine:
// a product catalog with dynamically adjusted prices, a registered user
// directory, per-session shopping carts, and a checkout flow that applies
// loyalty discounts and mutates stock. Presentation layers consume the
// engine through the HTTP and MCP adapters and re-render from its output.
package shop
