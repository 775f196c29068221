package service

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/mmynk/billman/internal/auth"
	"github.com/mmynk/billman/internal/models"
)

func newTestAuth(delay time.Duration) *AuthService {
	return NewAuthService(
		auth.NewPlaceholderAuthenticator(),
		auth.NewSessionManager("test-secret", time.Hour),
		delay,
		slog.Default(),
	)
}

func TestLoginPlaceholder(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuth(0)

	tests := []struct {
		name     string
		email    string
		password string
		role     models.Role
		wantErr  error
		wantRole models.Role
	}{
		{name: "any credentials pass", email: "me@example.com", password: "hunter2", role: models.RoleAdmin, wantRole: models.RoleAdmin},
		{name: "empty role defaults to User", email: "me@example.com", password: "hunter2", wantRole: models.RoleUser},
		{name: "missing email fails", password: "hunter2", wantErr: auth.ErrMissingCredentials},
		{name: "missing password fails", email: "me@example.com", wantErr: auth.ErrMissingCredentials},
		{name: "unknown role fails", email: "me@example.com", password: "x", role: "Owner", wantErr: ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := svc.Login(ctx, tt.email, tt.password, tt.role)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Login = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Login failed: %v", err)
			}
			if session.User.Email != tt.email || session.User.Role != tt.wantRole {
				t.Errorf("session user = %+v", session.User)
			}
			if session.Marker == "" {
				t.Error("no session marker issued")
			}

			claims, err := svc.Validate(session.Marker)
			if err != nil {
				t.Fatalf("Validate failed: %v", err)
			}
			if claims.Email != tt.email || claims.Role != tt.wantRole {
				t.Errorf("claims = %+v", claims)
			}
		})
	}
}

func TestRegisterThenLogin(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuth(0)

	if _, err := svc.Register(ctx, "me@example.com", "hunter2", models.RoleUser); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	// Registered accounts do get their password checked.
	if _, err := svc.Login(ctx, "me@example.com", "wrong", models.RoleUser); !errors.Is(err, auth.ErrInvalidCredentials) {
		t.Errorf("Login with wrong password = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(ctx, "me@example.com", "hunter2", models.RoleUser); err != nil {
		t.Errorf("Login with right password failed: %v", err)
	}

	// Duplicate sign-up is rejected; the form stays usable.
	if _, err := svc.Register(ctx, "me@example.com", "other", models.RoleUser); !errors.Is(err, auth.ErrEmailExists) {
		t.Errorf("duplicate Register = %v, want ErrEmailExists", err)
	}

	// Emails never registered still pass the placeholder flow.
	if _, err := svc.Login(ctx, "other@example.com", "whatever", models.RoleUser); err != nil {
		t.Errorf("placeholder login failed: %v", err)
	}
}

func TestLoginSimulatedDelay(t *testing.T) {
	ctx := context.Background()
	delay := 30 * time.Millisecond
	svc := newTestAuth(delay)

	start := time.Now()
	if _, err := svc.Login(ctx, "me@example.com", "hunter2", models.RoleUser); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed < delay {
		t.Errorf("login resolved in %v, want at least %v", elapsed, delay)
	}

	// The delay applies before validation: even bad input waits.
	start = time.Now()
	if _, err := svc.Login(ctx, "", "", models.RoleUser); err == nil {
		t.Fatal("Login with empty credentials succeeded")
	}
	if elapsed := time.Since(start); elapsed < delay {
		t.Errorf("failed login resolved in %v, want at least %v", elapsed, delay)
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	svc := newTestAuth(0)

	if _, err := svc.Validate("not-a-marker"); !errors.Is(err, auth.ErrInvalidToken) {
		t.Errorf("Validate = %v, want ErrInvalidToken", err)
	}

	// A marker signed with a different secret is rejected too.
	other := auth.NewSessionManager("other-secret", time.Hour)
	marker, err := other.Issue(&models.User{Email: "me@example.com", Role: models.RoleUser})
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if _, err := svc.Validate(marker); !errors.Is(err, auth.ErrInvalidToken) {
		t.Errorf("Validate(foreign marker) = %v, want ErrInvalidToken", err)
	}
}
