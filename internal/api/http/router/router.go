// Package router assembles the HTTP mux: route registration and the
// middleware chain.
package router

import (
	"net/http"

	"github.com/avoronov/notepad-server/internal/api/http/handler"
	"github.com/avoronov/notepad-server/internal/api/http/middleware"
	"github.com/avoronov/notepad-server/internal/logger"
	"github.com/avoronov/notepad-server/internal/model"
	"github.com/avoronov/notepad-server/internal/service"
)

// Router wires services to HTTP routes and middleware.
type Router struct {
	authService    *service.Auth
	noteService    *service.Note
	aiService      *service.AI
	contextManager model.ContextManager
	allowedOrigin  string
	logger         *logger.Logger
}

// New creates a new Router instance.
func New(
	authService *service.Auth,
	noteService *service.Note,
	aiService *service.AI,
	contextManager model.ContextManager,
	allowedOrigin string,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		noteService:    noteService,
		aiService:      aiService,
		contextManager: contextManager,
		allowedOrigin:  allowedOrigin,
		logger:         logger,
	}
}

// Register builds the mux. Registration and login are public; everything else
// requires a bearer token.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	cors := middleware.NewCORS(r.allowedOrigin)
	authenticate := middleware.NewAuthenticate(r.authService, r.contextManager, r.logger)

	authHandler := handler.NewAuth(r.authService, r.contextManager, r.logger)
	noteHandler := handler.NewNote(r.noteService, r.contextManager, r.logger)
	aiHandler := handler.NewAI(r.aiService, r.logger)

	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/register", authHandler.Register)
	mux.HandleFunc("POST /auth/login", authHandler.Login)

	protected := func(h http.HandlerFunc) http.Handler {
		return authenticate.Handle(h)
	}

	mux.Handle("GET /auth/protected-test", protected(authHandler.ProtectedTest))

	mux.Handle("POST /notes", protected(noteHandler.Create))
	mux.Handle("GET /notes", protected(noteHandler.List))
	mux.Handle("GET /notes/completed", protected(noteHandler.ListCompleted))
	mux.Handle("GET /notes/pending", protected(noteHandler.ListPending))
	mux.Handle("PUT /notes/{id}", protected(noteHandler.Update))
	mux.Handle("DELETE /notes/{id}", protected(noteHandler.Delete))
	mux.Handle("PUT /notes/{id}/attachment", protected(noteHandler.UploadAttachment))
	mux.Handle("GET /notes/{id}/attachment", protected(noteHandler.DownloadAttachment))
	mux.Handle("DELETE /notes/{id}/attachment", protected(noteHandler.DeleteAttachment))

	mux.Handle("POST /ai/chat", protected(aiHandler.Chat))

	return logging.Handle(cors.Handle(mux))
}
