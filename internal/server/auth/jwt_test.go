package auth

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophnotes/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

func newCodec(t *testing.T) *TokenCodec {
	t.Helper()
	c, err := NewTokenCodec(testKey, 15*time.Minute, 30*time.Minute)
	require.NoError(t, err)
	return c
}

func TestNewTokenCodec_RejectsShortKey(t *testing.T) {
	_, err := NewTokenCodec([]byte("short"), time.Minute, time.Minute)
	assert.ErrorIs(t, err, ErrWeakKey)

	_, err = NewTokenCodec(testKey, 0, time.Minute)
	assert.Error(t, err)
}

func TestIssueAndParse(t *testing.T) {
	c := newCodec(t)

	tok, err := c.IssueAccess("user-1")
	require.NoError(t, err)
	assert.Len(t, strings.Split(tok, "."), 3)

	claims, err := c.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, TokenAccess, claims.Type)
	assert.NotEmpty(t, claims.ID)
	require.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)
	assert.Equal(t, 15*time.Minute, claims.ExpiresAt.Sub(claims.IssuedAt.Time))

	assert.True(t, c.Validate(tok, TokenAccess))
	assert.True(t, c.Validate(common.BearerPrefix+tok, TokenAccess))

	sub, err := c.SubjectOf("Bearer " + tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", sub)
}

func TestClaimsWireShape(t *testing.T) {
	c := newCodec(t)
	tok, err := c.IssueRefresh("u")
	require.NoError(t, err)

	payload, err := base64.RawURLEncoding.DecodeString(strings.Split(tok, ".")[1])
	require.NoError(t, err)
	for _, k := range []string{`"sub":"u"`, `"type":"refresh"`, `"iat":`, `"exp":`, `"jti":`} {
		assert.Contains(t, string(payload), k)
	}
}

func TestTokensAreUniqueWithinSameSecond(t *testing.T) {
	c := newCodec(t)
	fixed := time.Unix(1_700_000_000, 0)
	c.now = func() time.Time { return fixed }

	a, err := c.IssueRefresh("u")
	require.NoError(t, err)
	b, err := c.IssueRefresh("u")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestValidate_KindMismatch(t *testing.T) {
	c := newCodec(t)

	access, err := c.IssueAccess("u")
	require.NoError(t, err)
	refresh, err := c.IssueRefresh("u")
	require.NoError(t, err)

	assert.False(t, c.Validate(access, TokenRefresh))
	assert.False(t, c.Validate(refresh, TokenAccess))
	assert.True(t, c.Validate(refresh, TokenRefresh))
}

func TestValidate_Expiry(t *testing.T) {
	c := newCodec(t)
	start := time.Now()
	c.now = func() time.Time { return start }

	tok, err := c.IssueAccess("u")
	require.NoError(t, err)
	assert.True(t, c.Validate(tok, TokenAccess))

	c.now = func() time.Time { return start.Add(15*time.Minute + time.Second) }
	assert.False(t, c.Validate(tok, TokenAccess))

	_, err = c.Parse(tok)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestParse_Tampered(t *testing.T) {
	c := newCodec(t)
	tok, err := c.IssueAccess("u")
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	assert.False(t, c.Validate(tampered, TokenAccess))

	other, err := NewTokenCodec([]byte("ffffffffffffffffffffffffffffffff"), time.Minute, time.Minute)
	require.NoError(t, err)
	assert.False(t, other.Validate(tok, TokenAccess))
}

func TestParse_RejectsOtherAlgorithms(t *testing.T) {
	c := newCodec(t)
	now := time.Now()
	claims := Claims{Type: TokenAccess, RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "u",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
	}}

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(testKey)
	require.NoError(t, err)
	assert.False(t, c.Validate(hs512, TokenAccess))

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	assert.False(t, c.Validate(none, TokenAccess))
}

func TestParse_RequiresExpiryAndSubject(t *testing.T) {
	c := newCodec(t)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{Type: TokenAccess,
		RegisteredClaims: jwt.RegisteredClaims{Subject: "u"}}).SignedString(testKey)
	require.NoError(t, err)
	assert.False(t, c.Validate(noExp, TokenAccess))

	noSub, err := c.Issue("", TokenAccess, time.Minute)
	require.NoError(t, err)
	assert.False(t, c.Validate(noSub, TokenAccess))
}

func TestParse_Garbage(t *testing.T) {
	c := newCodec(t)
	for _, s := range []string{"", "Bearer ", "not.a.jwt", "abc"} {
		_, err := c.Parse(s)
		assert.ErrorIs(t, err, common.ErrInvalidToken, s)
	}
}
