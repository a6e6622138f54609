// Package repomanager vends the repositories of one storage backend and runs
// units of work against them.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/gophnotes/internal/server/repositories/notes"
	"github.com/dmitrijs2005/gophnotes/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/gophnotes/internal/server/repositories/users"
)

type RepositoryManager interface {
	Users() users.Repository
	RefreshTokens() refreshtokens.Repository
	Notes() notes.Repository

	// WithTx runs fn with a manager whose repositories share one transaction
	// when the backend supports it. fn's error aborts the transaction.
	WithTx(ctx context.Context, fn func(ctx context.Context, m RepositoryManager) error) error

	// RunMigrations prepares the schema (tables or indexes).
	RunMigrations(ctx context.Context) error
	Close(ctx context.Context) error
}
