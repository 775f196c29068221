package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/billman/internal/models"
)

var (
	ErrMissingCredentials = errors.New("please fill all fields")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("email already registered")
)

// PlaceholderAuthenticator simulates a credential backend for the
// lifetime of the process. Accounts created via Register are kept in
// memory with bcrypt-hashed passwords and are verified on later
// logins; any unknown email is accepted as-is, since no real
// credential validation exists behind this boundary.
type PlaceholderAuthenticator struct {
	mu       sync.Mutex
	accounts map[string]string // email -> bcrypt hash
}

// NewPlaceholderAuthenticator creates an authenticator with no
// registered accounts.
func NewPlaceholderAuthenticator() *PlaceholderAuthenticator {
	return &PlaceholderAuthenticator{
		accounts: make(map[string]string),
	}
}

// Register creates an in-memory account with a hashed password.
func (a *PlaceholderAuthenticator) Register(ctx context.Context, email, password string, role models.Role) (*models.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if _, exists := a.accounts[email]; exists {
		return nil, ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	a.accounts[email] = string(hash)

	return &models.User{Email: email, Role: role, PasswordHash: string(hash)}, nil
}

// Authenticate accepts any non-empty credentials. Emails that were
// registered in this process are verified against their stored hash;
// everything else passes through unchecked.
func (a *PlaceholderAuthenticator) Authenticate(ctx context.Context, email, password string, role models.Role) (*models.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	a.mu.Lock()
	hash, registered := a.accounts[email]
	a.mu.Unlock()

	if registered {
		if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
			return nil, ErrInvalidCredentials
		}
		return &models.User{Email: email, Role: role, PasswordHash: hash}, nil
	}

	return &models.User{Email: email, Role: role}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
