// Package notes stores user notes. Every operation is scoped to an owner:
// a note owned by someone else behaves exactly like a missing one.
package notes

import (
	"context"

	"github.com/dmitrijs2005/gophnotes/internal/server/models"
)

type Repository interface {
	// Upsert creates the note or updates title, content and color of an
	// existing note with the same id and owner. When the id belongs to a
	// different owner nothing is written and common.ErrorNotFound is returned.
	Upsert(ctx context.Context, note *models.Note) (*models.Note, error)

	// ListByOwner returns the owner's notes, oldest first.
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Note, error)

	// Delete reports whether a note with id owned by ownerID was removed.
	Delete(ctx context.Context, id, ownerID string) (bool, error)
}
