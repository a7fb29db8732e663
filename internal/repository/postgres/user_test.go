package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avoronov/notepad-server/internal/model"
)

func newMockConnection(t *testing.T) (*Connection, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &Connection{DB: db}, mock
}

func TestUserRepository_GetByEmail(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewUserRepository(conn)

	createdAt := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, email, password_hash, created_at`)).
		WithArgs("a@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "created_at"}).
			AddRow(int64(1), "a@x.com", "hash", createdAt))

	user, err := repo.GetByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, "hash", user.PasswordHash)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByEmail_NotFound(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewUserRepository(conn)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, email, password_hash, created_at`)).
		WithArgs("missing@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "created_at"}))

	_, err := repo.GetByEmail(context.Background(), "missing@x.com")
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestUserRepository_Create(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewUserRepository(conn)

	createdAt := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users (email, password_hash)`)).
		WithArgs("a@x.com", "hash").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "created_at"}).
			AddRow(int64(1), "a@x.com", "hash", createdAt))

	user, err := repo.Create(context.Background(), model.User{Email: "a@x.com", PasswordHash: "hash"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewUserRepository(conn)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users (email, password_hash)`)).
		WithArgs("a@x.com", "hash").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_idx"})

	_, err := repo.Create(context.Background(), model.User{Email: "a@x.com", PasswordHash: "hash"})
	require.ErrorIs(t, err, model.ErrConflict)
}

func TestUserRepository_Create_OtherError(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewUserRepository(conn)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users (email, password_hash)`)).
		WithArgs("a@x.com", "hash").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.Create(context.Background(), model.User{Email: "a@x.com", PasswordHash: "hash"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrConflict)
}
