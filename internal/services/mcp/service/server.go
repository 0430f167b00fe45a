package service

import (
	"context"
	"fmt"
	"log"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/louisbranch/storefront/internal/platform/branding"
	"github.com/louisbranch/storefront/internal/services/mcp/domain"
	server "github.com/louisbranch/storefront/internal/services/shop/app"
	"github.com/louisbranch/storefront/internal/services/shop/engine"
)

// serverVersion identifies the MCP server version.
const serverVersion = "0.1.0"

// Server hosts the storefront MCP tool surface over one shared session.
type Server struct {
	engine    *engine.Engine
	session   *engine.Session
	mcpServer *mcp.Server
}

// NewServer builds an MCP server bound to the storefront engine.
func NewServer(eng *engine.Engine) *Server {
	session := eng.NewSession()
	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    branding.AppName,
		Version: serverVersion,
	}, nil)

	mcp.AddTool(mcpServer, domain.ProductsListTool(), domain.ProductsListHandler(eng))
	mcp.AddTool(mcpServer, domain.LoginTool(), domain.LoginHandler(session))
	mcp.AddTool(mcpServer, domain.LogoutTool(), domain.LogoutHandler(session))
	mcp.AddTool(mcpServer, domain.OperatorModeSetTool(), domain.OperatorModeSetHandler(eng, session))
	mcp.AddTool(mcpServer, domain.CartAddTool(), domain.CartAddHandler(session))
	mcp.AddTool(mcpServer, domain.CartRemoveTool(), domain.CartRemoveHandler(session))
	mcp.AddTool(mcpServer, domain.CartViewTool(), domain.CartViewHandler(session))
	mcp.AddTool(mcpServer, domain.CheckoutTool(), domain.CheckoutHandler(session))
	mcp.AddTool(mcpServer, domain.StockSetTool(), domain.StockSetHandler(eng, session))
	mcp.AddTool(mcpServer, domain.PriceSetTool(), domain.PriceSetHandler(eng, session))

	return &Server{
		engine:    eng,
		session:   session,
		mcpServer: mcpServer,
	}
}

// Serve starts the MCP server on stdio and blocks until it stops or the
// context ends. The scheduled repricing task runs for the lifetime of the
// serve call so tool clients observe the same price drift as HTTP clients.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	go s.engine.RunRepricing(ctx, 0)
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

// Run builds a seeded engine and serves it over stdio. A non-empty dbPath
// shares the same SQLite state as the HTTP service.
func Run(ctx context.Context, dbPath string) error {
	eng, store, err := server.NewEngine(ctx, dbPath)
	if err != nil {
		return err
	}
	if store != nil {
		defer func() {
			if err := store.Close(); err != nil {
				log.Printf("close storefront store: %v", err)
			}
		}()
	}
	return NewServer(eng).Serve(ctx)
}
