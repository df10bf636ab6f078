package service

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/epicevents/crm-system/internal/core/domain"
)

// DefaultTokenTTL is the session validity window from issuance.
const DefaultTokenTTL = 24 * time.Hour

// SessionClaims is the signed payload of a session token. Department reflects
// the user's department at login time; the session manager re-fetches the
// user for ground truth on every invocation.
type SessionClaims struct {
	UserID     uint              `json:"user_id"`
	Username   string            `json:"username"`
	Department domain.Department `json:"department"`
	jwt.RegisteredClaims
}

// TokenCodec encodes and decodes session tokens as HS256-signed JWTs.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenCodec builds a codec from the configured secret. An empty secret
// means dev mode: a fresh random 256-bit key is generated, valid for the
// lifetime of the process, so tokens will not survive a restart.
func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	if secret == "" {
		secret = randomSecret()
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenCodec{secret: []byte(secret), ttl: ttl}
}

// Encode signs a session claim set for user, issued at now and expiring
// exactly one TTL later.
func (c *TokenCodec) Encode(user *domain.User, now time.Time) (string, error) {
	now = now.UTC()
	claims := SessionClaims{
		UserID:     user.ID,
		Username:   user.Username,
		Department: user.Department,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return token, nil
}

// Decode verifies the signature and expiry of token and returns its claims.
// Any failure (tampered payload, wrong or "none" algorithm, expired claim)
// yields domain.ErrInvalidToken; no partially trusted claims ever escape.
func (c *TokenCodec) Decode(token string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}

func randomSecret() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("generate session secret: %v", err))
	}
	return hex.EncodeToString(b)
}
