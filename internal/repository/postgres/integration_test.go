//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/avoronov/notepad-server/internal/model"
	repo "github.com/avoronov/notepad-server/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "notepad_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/notepad_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func TestRepositories_CRUD(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	users := repo.NewUserRepository(conn)
	notes := repo.NewNoteRepository(conn)

	var alice, bob model.User

	t.Run("user_repository", func(t *testing.T) {
		alice, err = users.Create(ctx, model.User{Email: "alice@example.com", PasswordHash: "hash-a"})
		require.NoError(t, err)
		require.NotZero(t, alice.ID)

		bob, err = users.Create(ctx, model.User{Email: "bob@example.com", PasswordHash: "hash-b"})
		require.NoError(t, err)

		got, err := users.GetByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, alice.ID, got.ID)
		assert.Equal(t, "hash-a", got.PasswordHash)

		_, err = users.GetByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, model.ErrNotFound)

		// Email matching is exact, no case folding.
		_, err = users.GetByEmail(ctx, "Alice@example.com")
		assert.ErrorIs(t, err, model.ErrNotFound)

		_, err = users.Create(ctx, model.User{Email: "alice@example.com", PasswordHash: "other"})
		assert.ErrorIs(t, err, model.ErrConflict)
	})

	t.Run("note_repository", func(t *testing.T) {
		due := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
		note, err := notes.Create(ctx, model.Note{OwnerID: alice.ID, Title: "groceries", Content: "milk", DueDate: &due})
		require.NoError(t, err)
		require.NotZero(t, note.ID)
		require.NotNil(t, note.DueDate)
		assert.True(t, due.Equal(note.DueDate.UTC()))

		// Bob cannot see, update or delete Alice's note; each path reports
		// plain not-found.
		_, err = notes.GetByID(ctx, note.ID, bob.ID)
		assert.ErrorIs(t, err, model.ErrNotFound)

		_, err = notes.Update(ctx, model.Note{ID: note.ID, OwnerID: bob.ID, Title: "stolen"})
		assert.ErrorIs(t, err, model.ErrNotFound)

		err = notes.Delete(ctx, note.ID, bob.ID)
		assert.ErrorIs(t, err, model.ErrNotFound)

		updated, err := notes.Update(ctx, model.Note{ID: note.ID, OwnerID: alice.ID, Title: "groceries", Content: "milk, bread", IsCompleted: true})
		require.NoError(t, err)
		assert.True(t, updated.IsCompleted)
		assert.Nil(t, updated.DueDate)

		completed, err := notes.GetByOwnerAndCompletion(ctx, alice.ID, true)
		require.NoError(t, err)
		require.Len(t, completed, 1)

		pending, err := notes.GetByOwnerAndCompletion(ctx, alice.ID, false)
		require.NoError(t, err)
		assert.Empty(t, pending)

		withAttachment, err := notes.SetAttachment(ctx, note.ID, alice.ID, "notes/1/key", "list.txt")
		require.NoError(t, err)
		assert.Equal(t, "notes/1/key", withAttachment.AttachmentKey)

		cleared, err := notes.SetAttachment(ctx, note.ID, alice.ID, "", "")
		require.NoError(t, err)
		assert.Empty(t, cleared.AttachmentKey)

		require.NoError(t, notes.Delete(ctx, note.ID, alice.ID))
		_, err = notes.GetByID(ctx, note.ID, alice.ID)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
