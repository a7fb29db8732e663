package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/avoronov/notepad-server/internal/apierrors"
	"github.com/avoronov/notepad-server/internal/logger"
	"github.com/avoronov/notepad-server/internal/model"
)

// AuthService defines the authentication operations used by the handler.
type AuthService interface {
	Register(ctx context.Context, email, password string) (model.User, error)
	Login(ctx context.Context, email, password string) (string, error)
}

// ContextManager retrieves the authenticated user from a request context.
type ContextManager interface {
	GetUserFromContext(ctx context.Context) (model.User, bool)
}

// Auth handles registration and login requests.
type Auth struct {
	service        AuthService
	contextManager ContextManager
	logger         *logger.Logger
}

func NewAuth(service AuthService, contextManager ContextManager, logger *logger.Logger) *Auth {
	return &Auth{
		service:        service,
		contextManager: contextManager,
		logger:         logger,
	}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Register creates a new user account.
func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, apierrors.NewErrBadRequest("invalid request body"))
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, h.logger, apierrors.NewErrBadRequest("email and password are required"))
		return
	}

	user, err := h.service.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, userResponse{ID: user.ID, Email: user.Email})
}

// Login exchanges credentials for a bearer token.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, apierrors.NewErrBadRequest("invalid request body"))
		return
	}

	token, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

// ProtectedTest confirms the caller's token resolves to a user. It exists for
// clients to probe whether their stored token is still accepted.
func (h *Auth) ProtectedTest(w http.ResponseWriter, r *http.Request) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, apierrors.NewErrUnauthorized(nil))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message":    "authenticated",
		"user_email": user.Email,
	})
}
