package model

import "context"

// AIClient sends a user prompt to an AI provider and returns its reply.
type AIClient interface {
	Chat(ctx context.Context, prompt string) (string, error)
}
