package rest

import (
	"net/http"
	"time"

	"cantina-be/internal/auth"
	"cantina-be/internal/config"
	"cantina-be/internal/middleware"
	"cantina-be/internal/order"
	"cantina-be/internal/product"
	"cantina-be/internal/user"
)

// NewRouter assembles the route table and the middleware chain. Route paths
// and verbs are part of the public API contract the SPA depends on.
func NewRouter(
	cfg *config.Config,
	tokens *auth.TokenManager,
	userSvc user.Service,
	productSvc product.Service,
	orderSvc order.Service,
) http.Handler {
	mux := http.NewServeMux()

	authH := NewAuthHandler(userSvc, tokens)
	userH := NewUserHandler(userSvc)
	productH := NewProductHandler(productSvc)
	orderH := NewOrderHandler(orderSvc)
	healthH := NewHealthHandler(time.Now())

	requireAuth := middleware.RequireAuth(tokens)
	requireAdmin := func(h http.HandlerFunc) http.Handler {
		return requireAuth(middleware.RequireAdmin(h))
	}

	mux.Handle("GET /health", http.HandlerFunc(healthH.Status))

	mux.Handle("POST /auth/register", http.HandlerFunc(authH.Register))
	mux.Handle("POST /auth/login", http.HandlerFunc(authH.Login))
	mux.Handle("GET /me", requireAuth(http.HandlerFunc(authH.Me)))

	mux.Handle("GET /products", http.HandlerFunc(productH.List))
	mux.Handle("GET /products/{id}", http.HandlerFunc(productH.Get))
	mux.Handle("POST /products", requireAdmin(productH.Create))
	mux.Handle("DELETE /products/{id}", requireAdmin(productH.Delete))

	mux.Handle("POST /orders", requireAuth(http.HandlerFunc(orderH.Place)))
	mux.Handle("GET /orders", requireAuth(http.HandlerFunc(orderH.ListMine)))
	mux.Handle("GET /orders/all", requireAdmin(orderH.ListAll))
	mux.Handle("GET /orders/{id}", requireAuth(http.HandlerFunc(orderH.GetOne)))
	mux.Handle("PATCH /orders/{id}/status", requireAdmin(orderH.SetStatus))

	mux.Handle("GET /users", requireAdmin(userH.List))
	mux.Handle("PATCH /users/{id}/credit", requireAdmin(userH.Credit))

	var handler http.Handler = mux
	handler = middleware.RateLimit(handler)
	handler = middleware.CORS(cfg.CORSOrigins, handler)
	handler = middleware.Logging(handler)
	handler = middleware.RequestID(handler)

	return handler
}
