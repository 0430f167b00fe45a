// Package httpapi exposes the storefront engine as a JSON HTTP API.
package httpapi

import (
	"net/http"
	"time"

	"github.com/louisbranch/storefront/internal/services/shop/engine"
)

// Server hosts the storefront JSON endpoints. Browser clients are tracked
// with an in-memory cookie session so carts and operator mode survive
// across requests without any persistence.
type Server struct {
	engine   *engine.Engine
	sessions *sessionStore
}

// NewServer builds an HTTP server bound to the storefront engine.
func NewServer(eng *engine.Engine) *Server {
	return &Server{
		engine:   eng,
		sessions: newSessionStore(sessionTTL, time.Now),
	}
}

// RegisterRoutes registers storefront HTTP endpoints on the provided mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	if mux == nil {
		return
	}

	mux.HandleFunc("/api/products", s.handleProducts)
	mux.HandleFunc("/api/products/", s.handleProductRoutes)
	mux.HandleFunc("/api/login", s.handleLogin)
	mux.HandleFunc("/api/logout", s.handleLogout)
	mux.HandleFunc("/api/session", s.handleSession)
	mux.HandleFunc("/api/operator", s.handleOperator)
	mux.HandleFunc("/api/cart", s.handleCart)
	mux.HandleFunc("/api/cart/items", s.handleCartItems)
	mux.HandleFunc("/api/checkout", s.handleCheckout)
	mux.HandleFunc("/up", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
}

// Handler returns the complete route set as one handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.RegisterRoutes(mux)
	return mux
}
