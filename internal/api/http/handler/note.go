package handler

import (
	"context"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/avoronov/notepad-server/internal/apierrors"
	"github.com/avoronov/notepad-server/internal/logger"
	"github.com/avoronov/notepad-server/internal/model"
)

// maxAttachmentMemory bounds the multipart parser's in-memory buffer; larger
// uploads spill to temporary files.
const maxAttachmentMemory = 32 << 20

// NoteService defines the note operations used by the handler. Every method
// takes the owner ID so the store can filter rows by ownership.
type NoteService interface {
	CreateNote(ctx context.Context, params model.CreateNoteParams) (model.Note, error)
	GetNotes(ctx context.Context, ownerID int64) ([]model.Note, error)
	GetCompleted(ctx context.Context, ownerID int64) ([]model.Note, error)
	GetPending(ctx context.Context, ownerID int64) ([]model.Note, error)
	UpdateNote(ctx context.Context, params model.UpdateNoteParams) (model.Note, error)
	DeleteNote(ctx context.Context, ownerID int64, noteID int64) error
	UploadAttachment(ctx context.Context, ownerID int64, noteID int64, filename string, reader io.Reader) (model.Note, error)
	GetAttachment(ctx context.Context, ownerID int64, noteID int64) (io.ReadCloser, string, error)
	DeleteAttachment(ctx context.Context, ownerID int64, noteID int64) error
}

// Note handles note CRUD and attachment requests.
type Note struct {
	service        NoteService
	contextManager ContextManager
	logger         *logger.Logger
}

func NewNote(service NoteService, contextManager ContextManager, logger *logger.Logger) *Note {
	return &Note{
		service:        service,
		contextManager: contextManager,
		logger:         logger,
	}
}

type noteRequest struct {
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	DueDate     *time.Time `json:"due_date"`
	IsCompleted bool       `json:"is_completed"`
}

type noteResponse struct {
	ID             int64      `json:"id"`
	Title          string     `json:"title"`
	Content        string     `json:"content"`
	DueDate        *time.Time `json:"due_date"`
	IsCompleted    bool       `json:"is_completed"`
	AttachmentName string     `json:"attachment_name,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func toNoteResponse(note model.Note) noteResponse {
	return noteResponse{
		ID:             note.ID,
		Title:          note.Title,
		Content:        note.Content,
		DueDate:        note.DueDate,
		IsCompleted:    note.IsCompleted,
		AttachmentName: note.AttachmentName,
		CreatedAt:      note.CreatedAt,
		UpdatedAt:      note.UpdatedAt,
	}
}

func toNoteResponses(notes []model.Note) []noteResponse {
	out := make([]noteResponse, 0, len(notes))
	for _, note := range notes {
		out = append(out, toNoteResponse(note))
	}
	return out
}

func (h *Note) user(w http.ResponseWriter, r *http.Request) (model.User, bool) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, apierrors.NewErrUnauthorized(nil))
	}
	return user, ok
}

func noteID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

// Create adds a new note for the authenticated user.
func (h *Note) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := h.user(w, r)
	if !ok {
		return
	}

	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, apierrors.NewErrBadRequest("invalid request body"))
		return
	}
	if req.Title == "" {
		writeError(w, h.logger, apierrors.NewErrBadRequest("title is required"))
		return
	}

	note, err := h.service.CreateNote(r.Context(), model.CreateNoteParams{
		OwnerID: user.ID,
		Title:   req.Title,
		Content: req.Content,
		DueDate: req.DueDate,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, toNoteResponse(note))
}

// List returns all notes of the authenticated user.
func (h *Note) List(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, func(ctx context.Context, ownerID int64) ([]model.Note, error) {
		return h.service.GetNotes(ctx, ownerID)
	})
}

// ListCompleted returns the user's completed notes.
func (h *Note) ListCompleted(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.service.GetCompleted)
}

// ListPending returns the user's notes that are not completed yet.
func (h *Note) ListPending(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.service.GetPending)
}

func (h *Note) list(w http.ResponseWriter, r *http.Request, fetch func(context.Context, int64) ([]model.Note, error)) {
	user, ok := h.user(w, r)
	if !ok {
		return
	}

	notes, err := fetch(r.Context(), user.ID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, toNoteResponses(notes))
}

// Update replaces the mutable fields of an owned note.
func (h *Note) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := h.user(w, r)
	if !ok {
		return
	}

	id, err := noteID(r)
	if err != nil {
		writeError(w, h.logger, apierrors.NewErrBadRequest("invalid note id"))
		return
	}

	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, apierrors.NewErrBadRequest("invalid request body"))
		return
	}
	if req.Title == "" {
		writeError(w, h.logger, apierrors.NewErrBadRequest("title is required"))
		return
	}

	note, err := h.service.UpdateNote(r.Context(), model.UpdateNoteParams{
		ID:          id,
		OwnerID:     user.ID,
		Title:       req.Title,
		Content:     req.Content,
		DueDate:     req.DueDate,
		IsCompleted: req.IsCompleted,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, toNoteResponse(note))
}

// Delete removes an owned note and its attachment.
func (h *Note) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := h.user(w, r)
	if !ok {
		return
	}

	id, err := noteID(r)
	if err != nil {
		writeError(w, h.logger, apierrors.NewErrBadRequest("invalid note id"))
		return
	}

	if err := h.service.DeleteNote(r.Context(), user.ID, id); err != nil {
		writeError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UploadAttachment stores a multipart file as the note's attachment,
// replacing any previous one.
func (h *Note) UploadAttachment(w http.ResponseWriter, r *http.Request) {
	user, ok := h.user(w, r)
	if !ok {
		return
	}

	id, err := noteID(r)
	if err != nil {
		writeError(w, h.logger, apierrors.NewErrBadRequest("invalid note id"))
		return
	}

	if err := r.ParseMultipartForm(maxAttachmentMemory); err != nil {
		writeError(w, h.logger, apierrors.NewErrBadRequest("invalid multipart form"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, h.logger, apierrors.NewErrBadRequest("file field is required"))
		return
	}
	defer file.Close()

	note, err := h.service.UploadAttachment(r.Context(), user.ID, id, header.Filename, file)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, toNoteResponse(note))
}

// DownloadAttachment streams the note's attachment back to the client.
func (h *Note) DownloadAttachment(w http.ResponseWriter, r *http.Request) {
	user, ok := h.user(w, r)
	if !ok {
		return
	}

	id, err := noteID(r)
	if err != nil {
		writeError(w, h.logger, apierrors.NewErrBadRequest("invalid note id"))
		return
	}

	reader, filename, err := h.service.GetAttachment(r.Context(), user.ID, id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	if _, err := io.Copy(w, reader); err != nil {
		h.logger.Error("Note handler: failed to stream attachment",
			"note_id", id,
			"error", err.Error())
	}
}

// DeleteAttachment removes the note's attachment.
func (h *Note) DeleteAttachment(w http.ResponseWriter, r *http.Request) {
	user, ok := h.user(w, r)
	if !ok {
		return
	}

	id, err := noteID(r)
	if err != nil {
		writeError(w, h.logger, apierrors.NewErrBadRequest("invalid note id"))
		return
	}

	if err := h.service.DeleteAttachment(r.Context(), user.ID, id); err != nil {
		writeError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
