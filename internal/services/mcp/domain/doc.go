// Package domain defines the MCP tool schemas and handlers for the
// storefront simulation. Handlers operate on one shared engine session,
// so an MCP client behaves like a single browser tab: one login, one
// cart, and one operator-mode flag.
package domain
