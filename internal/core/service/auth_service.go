package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/epicevents/crm-system/internal/core/domain"
	"github.com/epicevents/crm-system/internal/core/ports"
)

// TokenStore persists exactly one session token between invocations.
// Implemented by infrastructure/token.Store.
type TokenStore interface {
	Save(token string) error
	Load() (string, error)
	Delete() error
	Exists() bool
}

// AuthService is the session manager: it authenticates credentials, issues
// and persists session tokens, and resolves the current user from the stored
// token on each invocation.
type AuthService struct {
	users  ports.UserRepository
	codec  *TokenCodec
	store  TokenStore
	hasher *PasswordHasher
	log    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, codec *TokenCodec, store TokenStore, hasher *PasswordHasher, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, codec: codec, store: store, hasher: hasher, log: log}
}

// Authenticate checks a username/password pair. The failure is uniform:
// callers cannot tell an unknown username from a wrong password.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.log.Warn().Str("username", username).Msg("login failed: unknown user")
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.log.Warn().Str("username", username).Msg("login failed: wrong password")
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}

// Login authenticates, issues a session token valid for one TTL, and
// persists it, overwriting any prior session.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	user, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return "", nil, err
	}

	token, err := s.codec.Encode(user, time.Now())
	if err != nil {
		return "", nil, err
	}
	if err := s.store.Save(token); err != nil {
		return "", nil, fmt.Errorf("persist session token: %w", err)
	}

	s.log.Info().
		Str("username", user.Username).
		Uint("user_id", user.ID).
		Str("department", string(user.Department)).
		Msg("login succeeded")

	return token, user, nil
}

// Logout deletes the stored session token. Logging out without a session is
// not an error.
func (s *AuthService) Logout() error {
	if err := s.store.Delete(); err != nil {
		return fmt.Errorf("delete session token: %w", err)
	}
	s.log.Info().Msg("logged out")
	return nil
}

// CurrentUser resolves the acting user from the stored token. It returns
// (nil, nil) when no valid session exists; an invalid or expired stored
// token is erased on the spot so stale state never lingers. On success the
// user is re-fetched by the id embedded in the claim, so a department change
// since login is reflected immediately.
func (s *AuthService) CurrentUser(ctx context.Context) (*domain.User, error) {
	token, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("load session token: %w", err)
	}
	if token == "" {
		return nil, nil
	}

	claims, err := s.codec.Decode(token)
	if err != nil {
		s.log.Debug().Err(err).Msg("stored token rejected, erasing it")
		if delErr := s.store.Delete(); delErr != nil {
			return nil, fmt.Errorf("erase invalid session token: %w", delErr)
		}
		return nil, nil
	}

	if claims.UserID == 0 {
		if delErr := s.store.Delete(); delErr != nil {
			return nil, fmt.Errorf("erase invalid session token: %w", delErr)
		}
		return nil, nil
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// User deleted since login; the session dies with it.
			if delErr := s.store.Delete(); delErr != nil {
				return nil, fmt.Errorf("erase orphaned session token: %w", delErr)
			}
			return nil, nil
		}
		return nil, fmt.Errorf("resolve current user: %w", err)
	}

	return user, nil
}

// IsAuthenticated reports whether a valid session exists.
func (s *AuthService) IsAuthenticated(ctx context.Context) bool {
	user, err := s.CurrentUser(ctx)
	return err == nil && user != nil
}
