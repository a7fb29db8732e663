// Package middleware provides the HTTP middleware chain: request logging,
// CORS and bearer token authentication.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/avoronov/notepad-server/internal/logger"
	"github.com/avoronov/notepad-server/internal/model"
)

// AuthService resolves a bearer token to the user it represents.
type AuthService interface {
	Authenticate(ctx context.Context, token string) (model.User, error)
}

// ContextManager stores the authenticated user in the request context.
type ContextManager interface {
	SetUserToContext(ctx context.Context, user model.User) context.Context
}

// Authenticate verifies the Authorization header on every protected request
// and injects the resolved user into the context. Any failure produces the
// same 401 response regardless of cause.
type Authenticate struct {
	service        AuthService
	contextManager ContextManager
	logger         *logger.Logger
}

func NewAuthenticate(service AuthService, contextManager ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{
		service:        service,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Handle wraps next with bearer token authentication.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r.Header.Get("Authorization"))

		user, err := m.service.Authenticate(r.Context(), token)
		if err != nil {
			m.logger.Debug("Authenticate middleware: request rejected",
				"path", r.URL.Path,
				"error", err.Error())
			unauthorized(w)
			return
		}

		ctx := m.contextManager.SetUserToContext(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. It returns an empty string for any other scheme or shape.
func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return header[len(prefix):]
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "could not validate credentials"})
}
