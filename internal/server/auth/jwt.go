// Package auth issues and parses the bearer tokens handed to clients.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophnotes/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// MinKeyLength is the smallest HS256 key accepted by NewTokenCodec.
const MinKeyLength = 32

type TokenKind string

const (
	TokenAccess  TokenKind = "access"
	TokenRefresh TokenKind = "refresh"
)

// Claims carries the token kind next to the registered claims
// (sub, iat, exp, jti).
type Claims struct {
	Type TokenKind `json:"type"`
	jwt.RegisteredClaims
}

// TokenCodec signs and verifies HS256 tokens with a single server-held key.
type TokenCodec struct {
	key        []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

var ErrWeakKey = errors.New("signing key must be at least 32 bytes")

func NewTokenCodec(key []byte, accessTTL, refreshTTL time.Duration) (*TokenCodec, error) {
	if len(key) < MinKeyLength {
		return nil, ErrWeakKey
	}
	if accessTTL <= 0 || refreshTTL <= 0 {
		return nil, fmt.Errorf("token ttl must be positive (access %s, refresh %s)", accessTTL, refreshTTL)
	}
	k := make([]byte, len(key))
	copy(k, key)
	return &TokenCodec{key: k, accessTTL: accessTTL, refreshTTL: refreshTTL, now: time.Now}, nil
}

func (c *TokenCodec) AccessTTL() time.Duration  { return c.accessTTL }
func (c *TokenCodec) RefreshTTL() time.Duration { return c.refreshTTL }

// Issue mints a token of the given kind for subject, valid for ttl.
func (c *TokenCodec) Issue(subject string, kind TokenKind, ttl time.Duration) (string, error) {
	now := c.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Type: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
	})

	s, err := token.SignedString(c.key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return s, nil
}

func (c *TokenCodec) IssueAccess(subject string) (string, error) {
	return c.Issue(subject, TokenAccess, c.accessTTL)
}

func (c *TokenCodec) IssueRefresh(subject string) (string, error) {
	return c.Issue(subject, TokenRefresh, c.refreshTTL)
}

// Parse verifies signature, algorithm and expiry. An optional "Bearer "
// prefix is ignored. Any failure is reported as common.ErrInvalidToken.
func (c *TokenCodec) Parse(token string) (*Claims, error) {
	token = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), common.BearerPrefix))
	if token == "" {
		return nil, common.ErrInvalidToken
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)

	claims := &Claims{}
	parsed, err := parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return c.key, nil
	})
	if err != nil || !parsed.Valid {
		return nil, common.ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, common.ErrInvalidToken
	}
	return claims, nil
}

// Validate reports whether token parses and is of the expected kind.
func (c *TokenCodec) Validate(token string, kind TokenKind) bool {
	claims, err := c.Parse(token)
	return err == nil && claims.Type == kind
}

func (c *TokenCodec) SubjectOf(token string) (string, error) {
	claims, err := c.Parse(token)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}
