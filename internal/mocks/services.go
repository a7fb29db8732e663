package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/avoronov/notepad-server/internal/model"
)

// AuthService is a mock of the authentication service used by the HTTP layer.
type AuthService struct {
	mock.Mock
}

func (m *AuthService) Register(ctx context.Context, email, password string) (model.User, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *AuthService) Authenticate(ctx context.Context, token string) (model.User, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(model.User), args.Error(1)
}

// NoteService is a mock of the note service used by the HTTP layer.
type NoteService struct {
	mock.Mock
}

func (m *NoteService) CreateNote(ctx context.Context, params model.CreateNoteParams) (model.Note, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.Note), args.Error(1)
}

func (m *NoteService) GetNotes(ctx context.Context, ownerID int64) ([]model.Note, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Note), args.Error(1)
}

func (m *NoteService) GetCompleted(ctx context.Context, ownerID int64) ([]model.Note, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Note), args.Error(1)
}

func (m *NoteService) GetPending(ctx context.Context, ownerID int64) ([]model.Note, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Note), args.Error(1)
}

func (m *NoteService) UpdateNote(ctx context.Context, params model.UpdateNoteParams) (model.Note, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.Note), args.Error(1)
}

func (m *NoteService) DeleteNote(ctx context.Context, ownerID int64, noteID int64) error {
	args := m.Called(ctx, ownerID, noteID)
	return args.Error(0)
}

func (m *NoteService) UploadAttachment(ctx context.Context, ownerID int64, noteID int64, filename string, reader io.Reader) (model.Note, error) {
	args := m.Called(ctx, ownerID, noteID, filename, reader)
	return args.Get(0).(model.Note), args.Error(1)
}

func (m *NoteService) GetAttachment(ctx context.Context, ownerID int64, noteID int64) (io.ReadCloser, string, error) {
	args := m.Called(ctx, ownerID, noteID)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.String(1), args.Error(2)
}

func (m *NoteService) DeleteAttachment(ctx context.Context, ownerID int64, noteID int64) error {
	args := m.Called(ctx, ownerID, noteID)
	return args.Error(0)
}

// AIService is a mock of the AI chat service used by the HTTP layer.
type AIService struct {
	mock.Mock
}

func (m *AIService) Chat(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}
