package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mmynk/billman/internal/auth"
	"github.com/mmynk/billman/internal/models"
)

// Session is the result of a successful login: the user presented at
// the boundary plus the opaque marker that proves authentication.
type Session struct {
	User   models.User
	Marker string
}

// AuthService runs the simulated authentication flow: a fixed delay
// standing in for network latency, the placeholder credential check,
// and session-marker issuance. Each attempt completes exactly once,
// with either a session or an error.
type AuthService struct {
	authenticator auth.Authenticator
	sessions      *auth.SessionManager
	delay         time.Duration
	logger        *slog.Logger
}

// NewAuthService creates a new authentication service. delay is the
// simulated latency applied before each attempt resolves.
func NewAuthService(authenticator auth.Authenticator, sessions *auth.SessionManager, delay time.Duration, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		sessions:      sessions,
		delay:         delay,
		logger:        logger,
	}
}

// Login authenticates the given credentials and returns a session.
func (s *AuthService) Login(ctx context.Context, email, password string, role models.Role) (*Session, error) {
	s.logger.Info("Login attempt", "email", email)

	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}

	role, err := normalizeRole(role)
	if err != nil {
		return nil, err
	}

	user, err := s.authenticator.Authenticate(ctx, email, password, role)
	if err != nil {
		s.logger.Warn("Login failed", "email", email, "error", err)
		return nil, err
	}

	return s.openSession(user)
}

// Register creates an in-memory account and returns a session for it.
func (s *AuthService) Register(ctx context.Context, email, password string, role models.Role) (*Session, error) {
	s.logger.Info("Sign-up attempt", "email", email)

	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}

	role, err := normalizeRole(role)
	if err != nil {
		return nil, err
	}

	user, err := s.authenticator.Register(ctx, email, password, role)
	if err != nil {
		s.logger.Warn("Sign-up failed", "email", email, "error", err)
		return nil, err
	}

	return s.openSession(user)
}

// Logout ends a session. Markers are stateless, so the caller simply
// discards theirs; this exists for symmetry and logging.
func (s *AuthService) Logout(ctx context.Context, session *Session) {
	if session != nil {
		s.logger.Info("Logout", "email", session.User.Email)
	}
}

// Validate checks a session marker and returns its claims.
func (s *AuthService) Validate(marker string) (*auth.Claims, error) {
	return s.sessions.Validate(marker)
}

func (s *AuthService) openSession(user *models.User) (*Session, error) {
	marker, err := s.sessions.Issue(user)
	if err != nil {
		s.logger.Error("Failed to issue session", "email", user.Email, "error", err)
		return nil, fmt.Errorf("failed to open session: %w", err)
	}

	s.logger.Info("Session opened", "email", user.Email, "role", user.Role)
	return &Session{User: *user, Marker: marker}, nil
}

// simulateLatency blocks for the configured delay, mimicking the
// round trip a real credential backend would take.
func (s *AuthService) simulateLatency(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func normalizeRole(role models.Role) (models.Role, error) {
	if role == "" {
		return models.RoleUser, nil
	}
	if !models.ValidRole(role) {
		return "", fmt.Errorf("%w: unknown role %q", ErrValidation, role)
	}
	return role, nil
}
