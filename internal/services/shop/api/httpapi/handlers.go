package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/louisbranch/storefront/internal/services/shop/domain"
	"github.com/louisbranch/storefront/internal/services/shop/engine"
)

type productView struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	ImageURL     string  `json:"image_url,omitempty"`
	BasePrice    float64 `json:"base_price"`
	CurrentPrice float64 `json:"current_price"`
	Stock        int     `json:"stock"`
}

type productsResponse struct {
	Products      []productView `json:"products"`
	RestockNotice string        `json:"restock_notice,omitempty"`
}

type userView struct {
	ID            int64   `json:"id"`
	Username      string  `json:"username"`
	LoyaltyPoints float64 `json:"loyalty_points"`
}

type sessionResponse struct {
	User         *userView `json:"user,omitempty"`
	OperatorMode bool      `json:"operator_mode"`
}

type cartResponse struct {
	Items           []int64 `json:"items"`
	Total           float64 `json:"total"`
	DiscountedTotal float64 `json:"discounted_total"`
}

type receiptView struct {
	Total         float64   `json:"total"`
	Discount      float64   `json:"discount"`
	Charged       float64   `json:"charged"`
	LoyaltyEarned float64   `json:"loyalty_earned"`
	Items         int       `json:"items"`
	CompletedAt   time.Time `json:"completed_at"`
}

type loginRequest struct {
	Username string `json:"username"`
}

type operatorRequest struct {
	Enabled bool `json:"enabled"`
}

type cartItemRequest struct {
	ProductID int64 `json:"product_id"`
}

type stockRequest struct {
	Stock int `json:"stock"`
}

type priceRequest struct {
	Price float64 `json:"price"`
}

type errorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

func toProductView(product domain.Product) productView {
	return productView{
		ID:           product.ID,
		Name:         product.Name,
		Description:  product.Description,
		ImageURL:     product.ImageURL,
		BasePrice:    product.BasePrice,
		CurrentPrice: product.CurrentPrice,
		Stock:        product.Stock,
	}
}

func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSONError(w, http.StatusMethodNotAllowed, "invalid_request", "method not allowed")
		return
	}

	products := s.engine.ListProducts()
	response := productsResponse{
		Products:      make([]productView, 0, len(products)),
		RestockNotice: s.engine.RestockNotice(),
	}
	for _, product := range products {
		response.Products = append(response.Products, toProductView(product))
	}
	writeJSON(w, http.StatusOK, response)
}

// handleProductRoutes dispatches /api/products/{id} and the operator
// override endpoints /api/products/{id}/stock and /api/products/{id}/price.
func (s *Server) handleProductRoutes(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/products/")
	idPart, action, _ := strings.Cut(rest, "/")
	id, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil || id <= 0 {
		writeJSONError(w, http.StatusNotFound, "not_found", "unknown product")
		return
	}

	switch action {
	case "":
		s.handleProductGet(w, r, id)
	case "stock":
		s.handleProductStock(w, r, id)
	case "price":
		s.handleProductPrice(w, r, id)
	default:
		writeJSONError(w, http.StatusNotFound, "not_found", "unknown resource")
	}
}

func (s *Server) handleProductGet(w http.ResponseWriter, r *http.Request, id int64) {
	if r.Method != http.MethodGet {
		writeJSONError(w, http.StatusMethodNotAllowed, "invalid_request", "method not allowed")
		return
	}
	product, ok := s.engine.Product(id)
	if !ok {
		writeJSONError(w, http.StatusNotFound, "not_found", "unknown product")
		return
	}
	writeJSON(w, http.StatusOK, toProductView(product))
}

func (s *Server) handleProductStock(w http.ResponseWriter, r *http.Request, id int64) {
	if r.Method != http.MethodPut {
		writeJSONError(w, http.StatusMethodNotAllowed, "invalid_request", "method not allowed")
		return
	}
	var request stockRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_input", "invalid request body")
		return
	}

	session := s.sessionFor(w, r)
	if err := session.SetStock(r.Context(), id, request.Stock); err != nil {
		writeEngineError(w, err)
		return
	}
	product, _ := s.engine.Product(id)
	writeJSON(w, http.StatusOK, toProductView(product))
}

func (s *Server) handleProductPrice(w http.ResponseWriter, r *http.Request, id int64) {
	if r.Method != http.MethodPut {
		writeJSONError(w, http.StatusMethodNotAllowed, "invalid_request", "method not allowed")
		return
	}
	var request priceRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_input", "invalid request body")
		return
	}

	session := s.sessionFor(w, r)
	if err := session.SetPrice(r.Context(), id, request.Price); err != nil {
		writeEngineError(w, err)
		return
	}
	product, _ := s.engine.Product(id)
	writeJSON(w, http.StatusOK, toProductView(product))
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSONError(w, http.StatusMethodNotAllowed, "invalid_request", "method not allowed")
		return
	}
	var request loginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_input", "invalid request body")
		return
	}

	session := s.sessionFor(w, r)
	user, err := session.Login(request.Username)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, userView{
		ID:            user.ID,
		Username:      user.Username,
		LoyaltyPoints: user.LoyaltyPoints,
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSONError(w, http.StatusMethodNotAllowed, "invalid_request", "method not allowed")
		return
	}

	session := s.sessionFor(w, r)
	session.Logout()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSONError(w, http.StatusMethodNotAllowed, "invalid_request", "method not allowed")
		return
	}

	session := s.sessionFor(w, r)
	writeJSON(w, http.StatusOK, sessionView(session))
}

func (s *Server) handleOperator(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSONError(w, http.StatusMethodNotAllowed, "invalid_request", "method not allowed")
		return
	}
	var request operatorRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_input", "invalid request body")
		return
	}

	session := s.sessionFor(w, r)
	session.SetOperatorMode(r.Context(), request.Enabled)
	writeJSON(w, http.StatusOK, sessionView(session))
}

func (s *Server) handleCart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSONError(w, http.StatusMethodNotAllowed, "invalid_request", "method not allowed")
		return
	}

	session := s.sessionFor(w, r)
	writeJSON(w, http.StatusOK, cartView(session))
}

func (s *Server) handleCartItems(w http.ResponseWriter, r *http.Request) {
	session := s.sessionFor(w, r)

	switch r.Method {
	case http.MethodPost:
		var request cartItemRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid_input", "invalid request body")
			return
		}
		if request.ProductID <= 0 {
			writeJSONError(w, http.StatusBadRequest, "invalid_input", "product_id is required")
			return
		}
		session.AddToCart(request.ProductID)
		writeJSON(w, http.StatusOK, cartView(session))
	case http.MethodDelete:
		id, err := strconv.ParseInt(r.URL.Query().Get("product_id"), 10, 64)
		if err != nil || id <= 0 {
			writeJSONError(w, http.StatusBadRequest, "invalid_input", "product_id is required")
			return
		}
		session.RemoveFromCart(id)
		writeJSON(w, http.StatusOK, cartView(session))
	default:
		writeJSONError(w, http.StatusMethodNotAllowed, "invalid_request", "method not allowed")
	}
}

func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSONError(w, http.StatusMethodNotAllowed, "invalid_request", "method not allowed")
		return
	}

	session := s.sessionFor(w, r)
	receipt, err := session.Checkout(r.Context())
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, receiptView{
		Total:         receipt.Total,
		Discount:      receipt.Discount,
		Charged:       receipt.Charged,
		LoyaltyEarned: receipt.LoyaltyEarned,
		Items:         receipt.Items,
		CompletedAt:   receipt.CompletedAt,
	})
}

func sessionView(session *engine.Session) sessionResponse {
	response := sessionResponse{OperatorMode: session.OperatorMode()}
	if user, ok := session.User(); ok {
		response.User = &userView{
			ID:            user.ID,
			Username:      user.Username,
			LoyaltyPoints: user.LoyaltyPoints,
		}
	}
	return response
}

func cartView(session *engine.Session) cartResponse {
	items := session.CartItems()
	if items == nil {
		items = []int64{}
	}
	return cartResponse{
		Items:           items,
		Total:           session.CartTotal(),
		DiscountedTotal: session.DiscountedTotal(),
	}
}

// writeEngineError maps engine and domain failures onto HTTP statuses.
func writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidUsername):
		writeJSONError(w, http.StatusUnauthorized, "invalid_username", "unknown username")
	case errors.Is(err, domain.ErrNotAuthenticated):
		writeJSONError(w, http.StatusUnauthorized, "not_authenticated", "login is required")
	case errors.Is(err, domain.ErrEmptyCart):
		writeJSONError(w, http.StatusBadRequest, "empty_cart", "cart has no items")
	case errors.Is(err, domain.ErrOperatorRequired):
		writeJSONError(w, http.StatusForbidden, "operator_required", "operator mode is required")
	case errors.Is(err, domain.ErrProductNotFound):
		writeJSONError(w, http.StatusNotFound, "not_found", "unknown product")
	case errors.Is(err, domain.ErrInvalidInput):
		writeJSONError(w, http.StatusBadRequest, "invalid_input", "invalid value")
	default:
		writeJSONError(w, http.StatusInternalServerError, "server_error", "internal error")
	}
}

func writeJSONError(w http.ResponseWriter, status int, code, description string) {
	writeJSON(w, status, errorResponse{Error: code, ErrorDescription: description})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	_ = encoder.Encode(payload)
}
