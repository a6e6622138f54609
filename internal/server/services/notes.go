package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophnotes/internal/common"
	"github.com/dmitrijs2005/gophnotes/internal/logging"
	"github.com/dmitrijs2005/gophnotes/internal/server/models"
	"github.com/dmitrijs2005/gophnotes/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// NoteInput is what a client may set on a note. An empty ID creates a note.
type NoteInput struct {
	ID      string
	Title   string
	Content string
	Color   int64
}

// NoteService is owner-scoped CRUD over notes. The owner id always comes from
// an authenticated access token, never from the request body.
type NoteService struct {
	repos  repomanager.RepositoryManager
	logger logging.Logger
	now    func() time.Time
}

func NewNoteService(m repomanager.RepositoryManager, logger logging.Logger) *NoteService {
	return &NoteService{repos: m, logger: logger.With("module", "notes"), now: time.Now}
}

func (s *NoteService) Save(ctx context.Context, ownerID string, in NoteInput) (*models.Note, error) {
	if ownerID == "" {
		return nil, common.ErrorUnauthorized
	}

	id := uuid.NewString()
	if in.ID != "" {
		parsed, err := uuid.Parse(in.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed note id", common.ErrorValidation)
		}
		// Stored ids are always lower-case hyphenated.
		id = parsed.String()
	}

	note, err := s.repos.Notes().Upsert(ctx, &models.Note{
		ID:        id,
		OwnerID:   ownerID,
		Title:     in.Title,
		Content:   in.Content,
		Color:     in.Color,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		s.logger.Error(ctx, "save note failed", "user_id", ownerID, "error", err)
		return nil, common.ErrorInternal
	}
	return note, nil
}

func (s *NoteService) List(ctx context.Context, ownerID string) ([]*models.Note, error) {
	if ownerID == "" {
		return nil, common.ErrorUnauthorized
	}
	notes, err := s.repos.Notes().ListByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error(ctx, "list notes failed", "user_id", ownerID, "error", err)
		return nil, common.ErrorInternal
	}
	return notes, nil
}

// Delete returns common.ErrorNotFound both for a missing note and for a note
// owned by someone else.
func (s *NoteService) Delete(ctx context.Context, ownerID, noteID string) error {
	if ownerID == "" {
		return common.ErrorUnauthorized
	}
	parsed, err := uuid.Parse(noteID)
	if err != nil {
		return common.ErrorNotFound
	}

	ok, err := s.repos.Notes().Delete(ctx, parsed.String(), ownerID)
	if err != nil {
		s.logger.Error(ctx, "delete note failed", "user_id", ownerID, "error", err)
		return common.ErrorInternal
	}
	if !ok {
		return common.ErrorNotFound
	}
	return nil
}
