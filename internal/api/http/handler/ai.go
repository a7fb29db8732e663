package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/avoronov/notepad-server/internal/apierrors"
	"github.com/avoronov/notepad-server/internal/logger"
)

// AIService defines the chat operation used by the handler.
type AIService interface {
	Chat(ctx context.Context, prompt string) (string, error)
}

// AI handles chat completion requests.
type AI struct {
	service AIService
	logger  *logger.Logger
}

func NewAI(service AIService, logger *logger.Logger) *AI {
	return &AI{
		service: service,
		logger:  logger,
	}
}

type chatRequest struct {
	Prompt string `json:"prompt"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// Chat forwards the prompt to the AI provider and returns its reply.
func (h *AI) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, apierrors.NewErrBadRequest("invalid request body"))
		return
	}

	reply, err := h.service.Chat(r.Context(), req.Prompt)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{Reply: reply})
}
