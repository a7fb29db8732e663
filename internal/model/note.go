package model

import (
	"context"
	"time"
)

// NoteStore defines persistence operations for notes. Every lookup and
// mutation takes the owner ID and filters on it in the query, so a note owned
// by another user is indistinguishable from a missing one.
type NoteStore interface {
	Create(ctx context.Context, note Note) (Note, error)
	GetByID(ctx context.Context, id int64, ownerID int64) (Note, error)
	GetByOwner(ctx context.Context, ownerID int64) ([]Note, error)
	GetByOwnerAndCompletion(ctx context.Context, ownerID int64, completed bool) ([]Note, error)
	Update(ctx context.Context, note Note) (Note, error)
	Delete(ctx context.Context, id int64, ownerID int64) error
	SetAttachment(ctx context.Context, id int64, ownerID int64, key string, name string) (Note, error)
}

// Note represents a stored note entity with task-tracking fields.
// AttachmentKey is the object storage key of the optional attachment; empty
// means no attachment.
type Note struct {
	ID             int64
	OwnerID        int64
	Title          string
	Content        string
	DueDate        *time.Time
	IsCompleted    bool
	AttachmentKey  string
	AttachmentName string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CreateNoteParams contains parameters to create a note.
type CreateNoteParams struct {
	OwnerID int64
	Title   string
	Content string
	DueDate *time.Time
}

// UpdateNoteParams contains parameters to update a note.
type UpdateNoteParams struct {
	ID          int64
	OwnerID     int64
	Title       string
	Content     string
	DueDate     *time.Time
	IsCompleted bool
}
