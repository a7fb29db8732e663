// Package appctx carries the authenticated user through request contexts.
package appctx

import (
	"context"

	"github.com/avoronov/notepad-server/internal/model"
)

type contextKey int

const userKey contextKey = iota

// Manager stores and retrieves the authenticated user in a request context.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetUserToContext returns a context carrying the authenticated user.
func (m *Manager) SetUserToContext(ctx context.Context, user model.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUserFromContext retrieves the authenticated user from the context.
// The boolean reports whether a user was set.
func (m *Manager) GetUserFromContext(ctx context.Context) (model.User, bool) {
	user, ok := ctx.Value(userKey).(model.User)
	return user, ok
}
