// Package http provides HTTP routing and middleware configuration
// for the expense service.
package http

import (
	"net/http"

	"github.com/akarev/expensekeeper/internal/middleware"
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter constructs and returns an HTTP handler that serves
// the expense API. It applies JSON content-type enforcement and request
// logging everywhere, and bearer-token authentication to the expense
// endpoints only.
//
// Routes:
//
//	POST   /register           → authHandler.Register
//	POST   /login              → authHandler.Login
//	POST   /expenses           → expenseHandler.Create  (protected)
//	GET    /expenses           → expenseHandler.List    (protected)
//	GET    /expenses/total     → expenseHandler.Total   (protected)
//	DELETE /expenses/{id}      → expenseHandler.Delete  (protected)
func NewRouter(
	authHandler *AuthHandler,
	expenseHandler *ExpenseHandler,
	verifier middleware.TokenVerifier,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Only allow requests with Content-Type: application/json
	r.Use(chiMiddleware.AllowContentType("application/json"))

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))

	// Public endpoints
	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)

	// Protected group: requires a valid bearer token
	r.Group(func(r chi.Router) {
		r.Use(middleware.BearerAuth(verifier))

		r.Route("/expenses", func(r chi.Router) {
			r.Post("/", expenseHandler.Create)
			r.Get("/", expenseHandler.List)
			r.Get("/total", expenseHandler.Total)
			r.Delete("/{id}", expenseHandler.Delete)
		})
	})

	return r
}
