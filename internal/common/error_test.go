package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicError_UnwrapsToKind(t *testing.T) {
	assert.True(t, errors.Is(ErrInvalidCredentials, ErrorUnauthorized))
	assert.True(t, errors.Is(ErrInvalidRefreshToken, ErrorUnauthorized))
	assert.True(t, errors.Is(ErrRefreshTokenNotRecognized, ErrorUnauthorized))
	assert.True(t, errors.Is(ErrInvalidAccessToken, ErrorUnauthorized))
	assert.True(t, errors.Is(ErrEmailTaken, ErrorConflict))
	assert.False(t, errors.Is(ErrEmailTaken, ErrorUnauthorized))
}

func TestPublicError_SurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("login: %w", ErrInvalidCredentials)

	var pe *PublicError
	assert.True(t, errors.As(wrapped, &pe))
	assert.Equal(t, "Invalid email or password.", pe.Message)
	assert.True(t, errors.Is(wrapped, ErrorUnauthorized))
}
