package auth

import (
	"context"

	"github.com/mmynk/billman/internal/models"
)

// Authenticator defines the credential-checking step of the login
// flow. The abstraction exists so the placeholder implementation can
// be swapped for a real backend without touching the service layer.
type Authenticator interface {
	// Register creates an account for the given email and password.
	// Returns the created user or an error if registration fails.
	Register(ctx context.Context, email, password string, role models.Role) (*models.User, error)

	// Authenticate verifies the credentials and returns the user on
	// success.
	Authenticate(ctx context.Context, email, password string, role models.Role) (*models.User, error)
}
