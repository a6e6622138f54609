package notes

import (
	"context"
	"sort"
	"sync"

	"github.com/dmitrijs2005/gophnotes/internal/common"
	"github.com/dmitrijs2005/gophnotes/internal/server/models"
)

type MemoryRepository struct {
	mu    sync.RWMutex
	notes map[string]models.Note
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{notes: map[string]models.Note{}}
}

func (r *MemoryRepository) Upsert(ctx context.Context, note *models.Note) (*models.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := *note
	if old, ok := r.notes[note.ID]; ok {
		if old.OwnerID != note.OwnerID {
			return nil, common.ErrorNotFound
		}
		n.CreatedAt = old.CreatedAt
	}
	r.notes[n.ID] = n
	return &n, nil
}

func (r *MemoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*models.Note{}
	for _, n := range r.notes {
		if n.OwnerID == ownerID {
			n := n
			result = append(result, &n)
		}
	}
	sortNotes(result)
	return result, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id, ownerID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.notes[id]
	if !ok || n.OwnerID != ownerID {
		return false, nil
	}
	delete(r.notes, id)
	return true, nil
}

func sortNotes(ns []*models.Note) {
	sort.Slice(ns, func(i, j int) bool {
		if !ns[i].CreatedAt.Equal(ns[j].CreatedAt) {
			return ns[i].CreatedAt.Before(ns[j].CreatedAt)
		}
		return ns[i].ID < ns[j].ID
	})
}
