package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avoronov/notepad-server/internal/model"
)

var _ model.NoteStore = (*NoteRepository)(nil)

// NoteRepository persists notes. Every query that targets a single note
// constrains both id and owner_id, so rows owned by other users fall out as
// sql.ErrNoRows and surface as model.ErrNotFound.
type NoteRepository struct {
	db *Connection
}

func NewNoteRepository(db *Connection) *NoteRepository {
	return &NoteRepository{
		db: db,
	}
}

const noteColumns = `id, owner_id, title, content, due_date, is_completed,
			  COALESCE(attachment_key, ''), COALESCE(attachment_name, ''), created_at, updated_at`

func scanNote(row *sql.Row) (model.Note, error) {
	var note model.Note
	err := row.Scan(
		&note.ID, &note.OwnerID, &note.Title, &note.Content, &note.DueDate, &note.IsCompleted,
		&note.AttachmentKey, &note.AttachmentName, &note.CreatedAt, &note.UpdatedAt,
	)
	return note, err
}

func (r *NoteRepository) Create(ctx context.Context, note model.Note) (model.Note, error) {
	query := `INSERT INTO notes (owner_id, title, content, due_date)
			  VALUES ($1, $2, $3, $4)
			  RETURNING ` + noteColumns

	savedNote, err := scanNote(r.db.QueryRowContext(ctx, query,
		note.OwnerID, note.Title, note.Content, note.DueDate,
	))
	if err != nil {
		return model.Note{}, fmt.Errorf("failed to create note: %w", err)
	}

	return savedNote, nil
}

func (r *NoteRepository) GetByID(ctx context.Context, id int64, ownerID int64) (model.Note, error) {
	query := `SELECT ` + noteColumns + `
			  FROM notes WHERE id = $1 AND owner_id = $2`

	note, err := scanNote(r.db.QueryRowContext(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Note{}, model.ErrNotFound
		}
		return model.Note{}, fmt.Errorf("failed to get note by id: %w", err)
	}

	return note, nil
}

func (r *NoteRepository) GetByOwner(ctx context.Context, ownerID int64) ([]model.Note, error) {
	query := `SELECT ` + noteColumns + `
			  FROM notes WHERE owner_id = $1
			  ORDER BY created_at DESC`

	return r.queryNotes(ctx, query, ownerID)
}

func (r *NoteRepository) GetByOwnerAndCompletion(ctx context.Context, ownerID int64, completed bool) ([]model.Note, error) {
	query := `SELECT ` + noteColumns + `
			  FROM notes WHERE owner_id = $1 AND is_completed = $2
			  ORDER BY created_at DESC`

	return r.queryNotes(ctx, query, ownerID, completed)
}

func (r *NoteRepository) queryNotes(ctx context.Context, query string, args ...any) ([]model.Note, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer rows.Close()

	var notes []model.Note
	for rows.Next() {
		var note model.Note
		err := rows.Scan(
			&note.ID, &note.OwnerID, &note.Title, &note.Content, &note.DueDate, &note.IsCompleted,
			&note.AttachmentKey, &note.AttachmentName, &note.CreatedAt, &note.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notes: %w", err)
	}

	return notes, nil
}

func (r *NoteRepository) Update(ctx context.Context, note model.Note) (model.Note, error) {
	query := `UPDATE notes
			  SET title = $3, content = $4, due_date = $5, is_completed = $6, updated_at = NOW()
			  WHERE id = $1 AND owner_id = $2
			  RETURNING ` + noteColumns

	updated, err := scanNote(r.db.QueryRowContext(ctx, query,
		note.ID, note.OwnerID, note.Title, note.Content, note.DueDate, note.IsCompleted,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Note{}, model.ErrNotFound
		}
		return model.Note{}, fmt.Errorf("failed to update note: %w", err)
	}

	return updated, nil
}

func (r *NoteRepository) Delete(ctx context.Context, id int64, ownerID int64) error {
	query := `DELETE FROM notes WHERE id = $1 AND owner_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *NoteRepository) SetAttachment(ctx context.Context, id int64, ownerID int64, key string, name string) (model.Note, error) {
	query := `UPDATE notes
			  SET attachment_key = NULLIF($3, ''), attachment_name = NULLIF($4, ''), updated_at = NOW()
			  WHERE id = $1 AND owner_id = $2
			  RETURNING ` + noteColumns

	updated, err := scanNote(r.db.QueryRowContext(ctx, query, id, ownerID, key, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Note{}, model.ErrNotFound
		}
		return model.Note{}, fmt.Errorf("failed to set attachment: %w", err)
	}

	return updated, nil
}
