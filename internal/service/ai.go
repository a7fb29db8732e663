package service

import (
	"context"
	"strings"

	"github.com/avoronov/notepad-server/internal/apierrors"
	"github.com/avoronov/notepad-server/internal/logger"
	"github.com/avoronov/notepad-server/internal/model"
)

// AI proxies chat prompts to the configured AI provider. The provider is a
// collaborator; this service only validates input and hides upstream failures
// behind one external error.
type AI struct {
	client model.AIClient
	logger *logger.Logger
}

func NewAI(client model.AIClient, logger *logger.Logger) *AI {
	return &AI{
		client: client,
		logger: logger,
	}
}

func (s *AI) Chat(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", apierrors.NewErrBadRequest("prompt is required")
	}

	reply, err := s.client.Chat(ctx, prompt)
	if err != nil {
		s.logger.Error("AI service: provider request failed", "error", err.Error())
		return "", apierrors.NewErrAIUnavailable(err)
	}

	return reply, nil
}
