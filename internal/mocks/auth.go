package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// TokenManager is a mock of model.TokenManager.
type TokenManager struct {
	mock.Mock
}

func (m *TokenManager) Issue(subject string) (string, error) {
	args := m.Called(subject)
	return args.String(0), args.Error(1)
}

func (m *TokenManager) Parse(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

// PasswordHasher is a mock of model.PasswordHasher.
type PasswordHasher struct {
	mock.Mock
}

func (m *PasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *PasswordHasher) Verify(password string, hash string) bool {
	args := m.Called(password, hash)
	return args.Bool(0)
}

// AIClient is a mock of model.AIClient.
type AIClient struct {
	mock.Mock
}

func (m *AIClient) Chat(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}
