package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/avoronov/notepad-server/internal/apierrors"
	"github.com/avoronov/notepad-server/internal/logger"
	"github.com/avoronov/notepad-server/internal/model"
)

// Note implements note CRUD, task-history filters and attachment handling.
// Every operation passes the caller's user ID down to the store, which
// filters ownership in the query itself; a note owned by someone else is
// reported as not found.
type Note struct {
	noteStore model.NoteStore
	storage   model.Storage
	logger    *logger.Logger
}

func NewNote(
	noteStore model.NoteStore,
	storage model.Storage,
	logger *logger.Logger,
) *Note {
	return &Note{
		noteStore: noteStore,
		storage:   storage,
		logger:    logger,
	}
}

func (s *Note) CreateNote(ctx context.Context, params model.CreateNoteParams) (model.Note, error) {
	note := model.Note{
		OwnerID: params.OwnerID,
		Title:   params.Title,
		Content: params.Content,
		DueDate: params.DueDate,
	}

	note, err := s.noteStore.Create(ctx, note)
	if err != nil {
		return model.Note{}, fmt.Errorf("failed to create note: %w", err)
	}

	s.logger.Info("Note service: note created", "note_id", note.ID, "owner_id", note.OwnerID)

	return note, nil
}

func (s *Note) GetNotes(ctx context.Context, ownerID int64) ([]model.Note, error) {
	notes, err := s.noteStore.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get notes by owner: %w", err)
	}

	return notes, nil
}

func (s *Note) GetCompleted(ctx context.Context, ownerID int64) ([]model.Note, error) {
	return s.getNotesByCompletion(ctx, ownerID, true)
}

func (s *Note) GetPending(ctx context.Context, ownerID int64) ([]model.Note, error) {
	return s.getNotesByCompletion(ctx, ownerID, false)
}

func (s *Note) getNotesByCompletion(ctx context.Context, ownerID int64, completed bool) ([]model.Note, error) {
	notes, err := s.noteStore.GetByOwnerAndCompletion(ctx, ownerID, completed)
	if err != nil {
		return nil, fmt.Errorf("failed to get notes by completion: %w", err)
	}

	return notes, nil
}

func (s *Note) UpdateNote(ctx context.Context, params model.UpdateNoteParams) (model.Note, error) {
	note := model.Note{
		ID:          params.ID,
		OwnerID:     params.OwnerID,
		Title:       params.Title,
		Content:     params.Content,
		DueDate:     params.DueDate,
		IsCompleted: params.IsCompleted,
	}

	updated, err := s.noteStore.Update(ctx, note)
	if errors.Is(err, model.ErrNotFound) {
		return model.Note{}, apierrors.NewErrNoteNotFound(params.ID)
	}
	if err != nil {
		return model.Note{}, fmt.Errorf("failed to update note: %w", err)
	}

	return updated, nil
}

func (s *Note) DeleteNote(ctx context.Context, ownerID int64, noteID int64) error {
	note, err := s.noteStore.GetByID(ctx, noteID, ownerID)
	if errors.Is(err, model.ErrNotFound) {
		return apierrors.NewErrNoteNotFound(noteID)
	}
	if err != nil {
		return fmt.Errorf("failed to get note by id: %w", err)
	}

	if err := s.noteStore.Delete(ctx, noteID, ownerID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return apierrors.NewErrNoteNotFound(noteID)
		}
		return fmt.Errorf("failed to delete note: %w", err)
	}

	if note.AttachmentKey != "" {
		if err := s.storage.Delete(ctx, note.AttachmentKey); err != nil {
			// The row is already gone; losing the object is logged, not fatal.
			s.logger.Error("Note service: failed to delete attachment object",
				"note_id", noteID,
				"key", note.AttachmentKey,
				"error", err.Error())
		}
	}

	s.logger.Info("Note service: note deleted", "note_id", noteID, "owner_id", ownerID)

	return nil
}

// UploadAttachment stores the attachment object and records its key on the
// note. A previous attachment is replaced.
func (s *Note) UploadAttachment(ctx context.Context, ownerID int64, noteID int64, filename string, reader io.Reader) (model.Note, error) {
	note, err := s.noteStore.GetByID(ctx, noteID, ownerID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Note{}, apierrors.NewErrNoteNotFound(noteID)
	}
	if err != nil {
		return model.Note{}, fmt.Errorf("failed to get note by id: %w", err)
	}

	key := fmt.Sprintf("notes/%d/%s", noteID, uuid.NewString())
	if err := s.storage.Upload(ctx, key, reader); err != nil {
		return model.Note{}, fmt.Errorf("failed to upload attachment: %w", err)
	}

	updated, err := s.noteStore.SetAttachment(ctx, noteID, ownerID, key, filename)
	if err != nil {
		return model.Note{}, fmt.Errorf("failed to set attachment: %w", err)
	}

	if note.AttachmentKey != "" {
		if err := s.storage.Delete(ctx, note.AttachmentKey); err != nil {
			s.logger.Error("Note service: failed to delete replaced attachment object",
				"note_id", noteID,
				"key", note.AttachmentKey,
				"error", err.Error())
		}
	}

	s.logger.Info("Note service: attachment uploaded",
		"note_id", noteID,
		"owner_id", ownerID,
		"filename", filename)

	return updated, nil
}

// GetAttachment streams the attachment of an owned note. The caller must
// close the returned reader.
func (s *Note) GetAttachment(ctx context.Context, ownerID int64, noteID int64) (io.ReadCloser, string, error) {
	note, err := s.noteStore.GetByID(ctx, noteID, ownerID)
	if errors.Is(err, model.ErrNotFound) {
		return nil, "", apierrors.NewErrNoteNotFound(noteID)
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to get note by id: %w", err)
	}

	if note.AttachmentKey == "" {
		return nil, "", apierrors.NewErrAttachmentNotFound(noteID)
	}

	reader, err := s.storage.Download(ctx, note.AttachmentKey)
	if err != nil {
		return nil, "", fmt.Errorf("failed to download attachment: %w", err)
	}

	return reader, note.AttachmentName, nil
}

func (s *Note) DeleteAttachment(ctx context.Context, ownerID int64, noteID int64) error {
	note, err := s.noteStore.GetByID(ctx, noteID, ownerID)
	if errors.Is(err, model.ErrNotFound) {
		return apierrors.NewErrNoteNotFound(noteID)
	}
	if err != nil {
		return fmt.Errorf("failed to get note by id: %w", err)
	}

	if note.AttachmentKey == "" {
		return apierrors.NewErrAttachmentNotFound(noteID)
	}

	if err := s.storage.Delete(ctx, note.AttachmentKey); err != nil {
		return fmt.Errorf("failed to delete attachment object: %w", err)
	}

	if _, err := s.noteStore.SetAttachment(ctx, noteID, ownerID, "", ""); err != nil {
		return fmt.Errorf("failed to clear attachment: %w", err)
	}

	s.logger.Info("Note service: attachment deleted", "note_id", noteID, "owner_id", ownerID)

	return nil
}
