// Package refreshtokens stores the digests of issued refresh tokens. A record
// is keyed by (user id, hashed token) and is consumed at most once.
package refreshtokens

import (
	"context"

	"github.com/dmitrijs2005/gophnotes/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, token *models.RefreshToken) error

	// Find returns common.ErrorNotFound when no record matches.
	Find(ctx context.Context, userID, hashedToken string) (*models.RefreshToken, error)

	// Delete removes the record and reports whether it existed. Of several
	// concurrent deletes of one record exactly one observes true.
	Delete(ctx context.Context, userID, hashedToken string) (bool, error)
}
