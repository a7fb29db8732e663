// Package mocks provides testify mocks for the model interfaces.
package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/avoronov/notepad-server/internal/model"
)

// UserStore is a mock of model.UserStore.
type UserStore struct {
	mock.Mock
}

func (m *UserStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) Create(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.User), args.Error(1)
}

// NoteStore is a mock of model.NoteStore.
type NoteStore struct {
	mock.Mock
}

func (m *NoteStore) Create(ctx context.Context, note model.Note) (model.Note, error) {
	args := m.Called(ctx, note)
	return args.Get(0).(model.Note), args.Error(1)
}

func (m *NoteStore) GetByID(ctx context.Context, id int64, ownerID int64) (model.Note, error) {
	args := m.Called(ctx, id, ownerID)
	return args.Get(0).(model.Note), args.Error(1)
}

func (m *NoteStore) GetByOwner(ctx context.Context, ownerID int64) ([]model.Note, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Note), args.Error(1)
}

func (m *NoteStore) GetByOwnerAndCompletion(ctx context.Context, ownerID int64, completed bool) ([]model.Note, error) {
	args := m.Called(ctx, ownerID, completed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Note), args.Error(1)
}

func (m *NoteStore) Update(ctx context.Context, note model.Note) (model.Note, error) {
	args := m.Called(ctx, note)
	return args.Get(0).(model.Note), args.Error(1)
}

func (m *NoteStore) Delete(ctx context.Context, id int64, ownerID int64) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}

func (m *NoteStore) SetAttachment(ctx context.Context, id int64, ownerID int64, key string, name string) (model.Note, error) {
	args := m.Called(ctx, id, ownerID, key, name)
	return args.Get(0).(model.Note), args.Error(1)
}

// Storage is a mock of model.Storage.
type Storage struct {
	mock.Mock
}

func (m *Storage) Upload(ctx context.Context, key string, reader io.Reader) error {
	args := m.Called(ctx, key, reader)
	return args.Error(0)
}

func (m *Storage) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func (m *Storage) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
