// Package service provides the business logic for credentials and expenses,
// delegating persistence to repository interfaces.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/akarev/expensekeeper/internal/models"
	"github.com/akarev/expensekeeper/internal/repository"
	"github.com/google/uuid"
)

// UserRepository defines the persistence operations
// required by the authentication service.
type UserRepository interface {
	// CreateUser persists a new user record.
	// Returns repository.ErrDuplicateUser if the username is taken.
	CreateUser(ctx context.Context, user models.User) error
	// UserByUsername fetches a user by exact username match.
	// Returns repository.ErrUserNotFound if no such user exists.
	UserByUsername(ctx context.Context, username string) (*models.User, error)
}

// PasswordHasher derives and compares password hashes. The scheme behind it
// can be swapped without touching the service.
type PasswordHasher interface {
	// Hash derives a salted one-way hash of the password.
	Hash(password string) ([]byte, error)
	// Compare checks password against hash, returning a non-nil error on mismatch.
	Compare(hash []byte, password string) error
}

// TokenMinter issues signed bearer tokens bound to a user identifier.
type TokenMinter interface {
	Mint(userID string) (string, error)
}

// dummyHash is a valid bcrypt hash compared against when a login names an
// unknown user, so that path performs the same work as a real comparison.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// AuthService implements registration and login on top of a UserRepository,
// a PasswordHasher, and a TokenMinter.
type AuthService struct {
	repo   UserRepository
	hasher PasswordHasher
	tokens TokenMinter
}

// NewAuthService constructs an AuthService from its collaborators.
func NewAuthService(repo UserRepository, hasher PasswordHasher, tokens TokenMinter) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens}
}

// Register creates a new user with a hashed password.
// Returns ErrValidation if username or password is empty and
// ErrDuplicateUser if the username is already taken.
func (s *AuthService) Register(ctx context.Context, username, password string) error {
	if username == "" {
		return fmt.Errorf("%w: username is required", ErrValidation)
	}
	if password == "" {
		return fmt.Errorf("%w: password is required", ErrValidation)
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hashed,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return ErrDuplicateUser
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// Login checks the supplied credentials and mints a bearer token on success.
// An unknown username and a wrong password both yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.repo.UserByUsername(ctx, username)
	if errors.Is(err, repository.ErrUserNotFound) {
		// Burn a comparison so unknown users cost the same as mismatches.
		_ = s.hasher.Compare(dummyHash, password)
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("lookup user: %w", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return "", ErrInvalidCredentials
	}

	tok, err := s.tokens.Mint(user.ID)
	if err != nil {
		return "", fmt.Errorf("mint token: %w", err)
	}
	return tok, nil
}
