package repomanager

import (
	"context"
	"errors"
	"io"

	"github.com/dmitrijs2005/gophnotes/internal/server/repositories/notes"
	"github.com/dmitrijs2005/gophnotes/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/gophnotes/internal/server/repositories/users"
)

// Overrides replaces individual repositories of a base manager, e.g.
// refresh tokens in Redis or notes in S3. Nil fields keep the base one.
type Overrides struct {
	RefreshTokens refreshtokens.Repository
	Notes         notes.Repository
	// Closers are closed after the base manager.
	Closers []io.Closer
}

type overlay struct {
	base RepositoryManager
	o    Overrides
}

// WithOverrides returns base unchanged when o overrides nothing.
func WithOverrides(base RepositoryManager, o Overrides) RepositoryManager {
	if o.RefreshTokens == nil && o.Notes == nil && len(o.Closers) == 0 {
		return base
	}
	return &overlay{base: base, o: o}
}

func (m *overlay) Users() users.Repository { return m.base.Users() }

func (m *overlay) RefreshTokens() refreshtokens.Repository {
	if m.o.RefreshTokens != nil {
		return m.o.RefreshTokens
	}
	return m.base.RefreshTokens()
}

func (m *overlay) Notes() notes.Repository {
	if m.o.Notes != nil {
		return m.o.Notes
	}
	return m.base.Notes()
}

func (m *overlay) WithTx(ctx context.Context, fn func(ctx context.Context, m RepositoryManager) error) error {
	return m.base.WithTx(ctx, func(ctx context.Context, tx RepositoryManager) error {
		return fn(ctx, &overlay{base: tx, o: m.o})
	})
}

func (m *overlay) RunMigrations(ctx context.Context) error { return m.base.RunMigrations(ctx) }

func (m *overlay) Close(ctx context.Context) error {
	errs := []error{m.base.Close(ctx)}
	for _, c := range m.o.Closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}
