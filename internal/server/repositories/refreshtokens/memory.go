package refreshtokens

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/gophnotes/internal/common"
	"github.com/dmitrijs2005/gophnotes/internal/server/models"
)

type key struct{ userID, hash string }

type MemoryRepository struct {
	mu     sync.Mutex
	tokens map[key]models.RefreshToken
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{tokens: map[key]models.RefreshToken{}}
}

func (r *MemoryRepository) Create(ctx context.Context, token *models.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[key{token.UserID, token.HashedToken}] = *token
	return nil
}

func (r *MemoryRepository) Find(ctx context.Context, userID, hashedToken string) (*models.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tokens[key{userID, hashedToken}]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &t, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, userID, hashedToken string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := key{userID, hashedToken}
	if _, ok := r.tokens[k]; !ok {
		return false, nil
	}
	delete(r.tokens, k)
	return true, nil
}
