// Package services contains server-side business logic. This file implements
// AuthService: registration, login and refresh-token rotation.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophnotes/internal/common"
	"github.com/dmitrijs2005/gophnotes/internal/cryptox"
	"github.com/dmitrijs2005/gophnotes/internal/logging"
	"github.com/dmitrijs2005/gophnotes/internal/server/auth"
	"github.com/dmitrijs2005/gophnotes/internal/server/models"
	"github.com/dmitrijs2005/gophnotes/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// TokenPair bundles a short-lived access token and a longer-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// PasswordHasher is satisfied by *cryptox.PasswordHasher.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, digest string) bool
	VerifyDummy(plain string)
}

type AuthService struct {
	repos  repomanager.RepositoryManager
	hasher PasswordHasher
	tokens *auth.TokenCodec
	logger logging.Logger
	now    func() time.Time
}

func NewAuthService(m repomanager.RepositoryManager, hasher PasswordHasher, tokens *auth.TokenCodec, logger logging.Logger) *AuthService {
	return &AuthService{
		repos:  m,
		hasher: hasher,
		tokens: tokens,
		logger: logger.With("module", "auth"),
		now:    time.Now,
	}
}

// Register creates an account. The email is stored normalized.
func (s *AuthService) Register(ctx context.Context, email, password string) (*models.User, error) {
	email = models.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", common.ErrorValidation)
	}

	_, err := s.repos.Users().GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, common.ErrEmailTaken
	case !errors.Is(err, common.ErrorNotFound):
		return nil, s.internal(ctx, "lookup user", err)
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			return nil, err
		}
		return nil, s.internal(ctx, "hash password", err)
	}

	user := &models.User{
		ID:             uuid.NewString(),
		Email:          email,
		HashedPassword: digest,
		CreatedAt:      s.now().UTC(),
	}
	u, err := s.repos.Users().Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			return nil, common.ErrEmailTaken
		}
		return nil, s.internal(ctx, "create user", err)
	}

	s.logger.Info(ctx, "user registered", "user_id", u.ID)
	return u, nil
}

// Login answers unknown email and wrong password with the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	email = models.NormalizeEmail(email)

	user, err := s.repos.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.hasher.VerifyDummy(password)
			return nil, common.ErrInvalidCredentials
		}
		return nil, s.internal(ctx, "lookup user", err)
	}
	if !s.hasher.Verify(password, user.HashedPassword) {
		return nil, common.ErrInvalidCredentials
	}

	pair, err := s.issuePair(ctx, s.repos, user.ID)
	if err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "user logged in", "user_id", user.ID)
	return pair, nil
}

// Refresh redeems a refresh token exactly once and returns a new pair.
// The old record is deleted and the new one stored in the same unit of work;
// whoever loses a concurrent redemption gets ErrRefreshTokenNotRecognized.
func (s *AuthService) Refresh(ctx context.Context, rawRefreshToken string) (*TokenPair, error) {
	raw := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(rawRefreshToken), common.BearerPrefix))

	claims, err := s.tokens.Parse(raw)
	if err != nil || claims.Type != auth.TokenRefresh {
		return nil, common.ErrInvalidRefreshToken
	}
	userID := claims.Subject

	if _, err := s.repos.Users().GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidRefreshToken
		}
		return nil, s.internal(ctx, "lookup user", err)
	}

	hashed := cryptox.HashToken(raw)

	var pair *TokenPair
	err = s.repos.WithTx(ctx, func(ctx context.Context, tx repomanager.RepositoryManager) error {
		if _, err := tx.RefreshTokens().Find(ctx, userID, hashed); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrRefreshTokenNotRecognized
			}
			return s.internal(ctx, "find refresh token", err)
		}

		deleted, err := tx.RefreshTokens().Delete(ctx, userID, hashed)
		if err != nil {
			return s.internal(ctx, "delete refresh token", err)
		}
		if !deleted {
			return common.ErrRefreshTokenNotRecognized
		}

		pair, err = s.issuePair(ctx, tx, userID)
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrRefreshTokenNotRecognized) {
			s.logger.Warn(ctx, "refresh token not recognized", "user_id", userID)
		}
		return nil, err
	}
	return pair, nil
}

// Authenticate validates an access token, with or without the "Bearer "
// prefix, and returns the user id it was issued to.
func (s *AuthService) Authenticate(ctx context.Context, bearer string) (string, error) {
	claims, err := s.tokens.Parse(bearer)
	if err != nil || claims.Type != auth.TokenAccess {
		return "", common.ErrInvalidAccessToken
	}
	return claims.Subject, nil
}

func (s *AuthService) issuePair(ctx context.Context, m repomanager.RepositoryManager, userID string) (*TokenPair, error) {
	access, err := s.tokens.IssueAccess(userID)
	if err != nil {
		return nil, s.internal(ctx, "issue access token", err)
	}
	refresh, err := s.tokens.IssueRefresh(userID)
	if err != nil {
		return nil, s.internal(ctx, "issue refresh token", err)
	}

	now := s.now().UTC()
	record := &models.RefreshToken{
		ID:          uuid.NewString(),
		UserID:      userID,
		HashedToken: cryptox.HashToken(refresh),
		ExpiresAt:   now.Add(s.tokens.RefreshTTL()),
		CreatedAt:   now,
	}
	if err := m.RefreshTokens().Create(ctx, record); err != nil {
		return nil, s.internal(ctx, "store refresh token", err)
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// internal logs the cause and returns the opaque internal error.
func (s *AuthService) internal(ctx context.Context, op string, err error) error {
	s.logger.Error(ctx, op+" failed", "error", err)
	return common.ErrorInternal
}
