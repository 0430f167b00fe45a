// Package service hosts the storefront MCP server over stdio transport.
package service
