// Package http provides HTTP handlers for user registration, login,
// and expense management.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/akarev/expensekeeper/internal/service"
)

// AuthService defines the interface for authentication operations
// required by the HTTP handlers.
type AuthService interface {
	// Register creates a new user with the given credentials.
	Register(ctx context.Context, username, password string) error
	// Login checks credentials and returns a bearer token on success.
	Login(ctx context.Context, username, password string) (string, error)
}

// AuthHandler handles HTTP requests for user registration and login.
type AuthHandler struct {
	// AuthService performs the underlying authentication operations.
	AuthService AuthService
}

// CredentialsRequest represents the JSON payload for registration and login.
type CredentialsRequest struct {
	// Username is the login name.
	Username string `json:"username"`
	// Password is the raw password. It is never stored or logged.
	Password string `json:"password"`
}

// Register handles user registration requests.
// It expects a JSON body with non-empty "username" and "password" fields.
// Responds 201 on success, 400 on malformed input, and 409 when the
// username is already taken.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if err := h.AuthService.Register(r.Context(), req.Username, req.Password); err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			http.Error(w, "username and password are required", http.StatusBadRequest)
		case errors.Is(err, service.ErrDuplicateUser):
			http.Error(w, "user already exists", http.StatusConflict)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"message": "user registered",
	})
}

// Login handles login requests.
// On valid credentials it responds with a JSON body carrying the bearer
// token. Unknown usernames and wrong passwords both yield the same 401.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	token, err := h.AuthService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"token": token,
	})
}
