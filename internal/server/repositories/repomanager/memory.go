package repomanager

import (
	"context"

	"github.com/dmitrijs2005/gophnotes/internal/server/repositories/notes"
	"github.com/dmitrijs2005/gophnotes/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/gophnotes/internal/server/repositories/users"
)

// InMemoryRepositoryManager keeps everything in process memory. Nothing
// survives a restart.
type InMemoryRepositoryManager struct {
	users  *users.MemoryRepository
	tokens *refreshtokens.MemoryRepository
	notes  *notes.MemoryRepository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		users:  users.NewMemoryRepository(),
		tokens: refreshtokens.NewMemoryRepository(),
		notes:  notes.NewMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) Users() users.Repository                 { return m.users }
func (m *InMemoryRepositoryManager) RefreshTokens() refreshtokens.Repository { return m.tokens }
func (m *InMemoryRepositoryManager) Notes() notes.Repository                 { return m.notes }

func (m *InMemoryRepositoryManager) WithTx(ctx context.Context, fn func(ctx context.Context, m RepositoryManager) error) error {
	return fn(ctx, m)
}

func (m *InMemoryRepositoryManager) RunMigrations(context.Context) error { return nil }
func (m *InMemoryRepositoryManager) Close(context.Context) error         { return nil }
