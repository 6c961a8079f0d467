package shoptest

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// Server is an in-memory stand-in for the shopping-cart backend, faithful to
// its observable contract: Go-cased JSON field names, a positional 1-based
// cart removal route, a {"order": ...} checkout envelope, and a token minted
// at login. Tests point the real client at it via httptest.
type Server struct {
	mu       sync.Mutex
	users    map[string]string
	products []Product
	cart     []CartItem
	orders   []Order
	requests int

	router chi.Router
}

// Field names are deliberately untagged so they serialize exactly like the
// real backend's Go structs do.

type Product struct {
	ID    int
	Name  string
	Price int
}

type CartItem struct {
	Product  Product
	Quantity int
}

type Order struct {
	ID    int
	Items []CartItem
	Total int
}

func New(products ...Product) *Server {
	s := &Server{
		users:    map[string]string{},
		products: products,
		cart:     []CartItem{},
		orders:   []Order{},
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.countRequests)

	r.Post("/users", s.signup)
	r.Post("/users/login", s.login)
	r.Get("/products", s.listProducts)
	r.Post("/cart/add", s.addToCart)
	r.Get("/cart", s.getCart)
	r.Delete("/cart/remove/{id}", s.removeFromCart)
	r.Post("/orders", s.checkout)
	r.Get("/orders", s.listOrders)

	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Requests reports how many HTTP requests the server has handled.
func (s *Server) Requests() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests
}

// CartLines returns a copy of the current server-side cart.
func (s *Server) CartLines() []CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]CartItem(nil), s.cart...)
}

// SeedOrders installs a ready-made order history.
func (s *Server) SeedOrders(orders ...Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, orders...)
}

func (s *Server) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests++
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) signup(w http.ResponseWriter, r *http.Request) {
	var body map[string]string
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid body"})
		return
	}
	s.mu.Lock()
	s.users[body["username"]] = body["password"]
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{"message": "user created"})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var body map[string]string
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid"})
		return
	}
	s.mu.Lock()
	pass, ok := s.users[body["username"]]
	s.mu.Unlock()
	if !ok || pass != body["password"] {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "invalid credentials"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"token": uuid.NewString()})
}

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	products := append([]Product(nil), s.products...)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, products)
}

func (s *Server) addToCart(w http.ResponseWriter, r *http.Request) {
	var body map[string]int
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == body["product_id"] {
			s.cart = append(s.cart, CartItem{Product: p, Quantity: body["quantity"]})
			writeJSON(w, http.StatusOK, map[string]any{"message": "added"})
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]any{"error": "product not found"})
}

func (s *Server) getCart(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{"items": s.cart, "total": cartTotal(s.cart)})
}

func (s *Server) removeFromCart(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))

	s.mu.Lock()
	defer s.mu.Unlock()
	if id <= 0 || id > len(s.cart) {
		writeJSON(w, http.StatusNotFound, map[string]any{"error": "invalid id"})
		return
	}
	s.cart = append(s.cart[:id-1], s.cart[id:]...)
	writeJSON(w, http.StatusOK, map[string]any{"message": "removed"})
}

func (s *Server) checkout(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order := Order{
		ID:    len(s.orders) + 1,
		Items: s.cart,
		Total: cartTotal(s.cart),
	}
	s.orders = append(s.orders, order)
	s.cart = []CartItem{}

	writeJSON(w, http.StatusOK, map[string]any{"order": order})
}

func (s *Server) listOrders(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.orders)
}

func cartTotal(items []CartItem) int {
	total := 0
	for _, it := range items {
		total += it.Product.Price * it.Quantity
	}
	return total
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
