package client

import (
	"context"
	"time"
)

// Note is a note as the server returned it.
type Note struct {
	ID        string
	Title     string
	Content   string
	Color     int64
	CreatedAt time.Time
}

// NoteInput creates a note, or replaces one when ID is set.
type NoteInput struct {
	ID      string
	Title   string
	Content string
	Color   int64
}

type Client interface {
	Close() error
	Register(ctx context.Context, email, password string) (string, error)
	Login(ctx context.Context, email, password string) error
	Refresh(ctx context.Context) error
	SaveNote(ctx context.Context, in NoteInput) (*Note, error)
	ListNotes(ctx context.Context) ([]Note, error)
	DeleteNote(ctx context.Context, id string) error
	Ping(ctx context.Context) error
	SetTokens(access, refresh string)
	Tokens() (access, refresh string)
}
