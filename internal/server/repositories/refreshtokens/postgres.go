package refreshtokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophnotes/internal/common"
	"github.com/dmitrijs2005/gophnotes/internal/dbx"
	"github.com/dmitrijs2005/gophnotes/internal/server/models"
)

// PostgresRepository works over dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, token *models.RefreshToken) error {
	query := `
		INSERT INTO refresh_tokens (id, user_id, hashed_token, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := r.db.ExecContext(ctx, query, token.ID, token.UserID, token.HashedToken, token.ExpiresAt, token.CreatedAt); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Find(ctx context.Context, userID, hashedToken string) (*models.RefreshToken, error) {
	query := `
		SELECT id, user_id, hashed_token, expires_at, created_at
		FROM refresh_tokens
		WHERE user_id = $1 AND hashed_token = $2
	`
	t := &models.RefreshToken{}
	err := r.db.QueryRowContext(ctx, query, userID, hashedToken).
		Scan(&t.ID, &t.UserID, &t.HashedToken, &t.ExpiresAt, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return t, nil
}

// Delete relies on the row lock taken by DELETE: a concurrent transaction
// deleting the same row waits and then sees zero affected rows.
func (r *PostgresRepository) Delete(ctx context.Context, userID, hashedToken string) (bool, error) {
	query := `
		DELETE FROM refresh_tokens
		WHERE user_id = $1 AND hashed_token = $2
	`
	res, err := r.db.ExecContext(ctx, query, userID, hashedToken)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	ok, err := dbx.Affected(res)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return ok, nil
}
