package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/avoronov/notepad-server/internal/apierrors"
	"github.com/avoronov/notepad-server/internal/mocks"
	"github.com/avoronov/notepad-server/internal/testutil"
)

func TestAI_Chat_Success(t *testing.T) {
	client := &mocks.AIClient{}
	client.On("Chat", mock.Anything, "summarize my notes").Return("here is a summary", nil)

	s := NewAI(client, testutil.MakeNoopLogger())

	reply, err := s.Chat(context.Background(), "summarize my notes")
	require.NoError(t, err)
	assert.Equal(t, "here is a summary", reply)
}

func TestAI_Chat_EmptyPrompt(t *testing.T) {
	client := &mocks.AIClient{}

	s := NewAI(client, testutil.MakeNoopLogger())

	_, err := s.Chat(context.Background(), "   ")

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.Status)
	client.AssertNotCalled(t, "Chat", mock.Anything, mock.Anything)
}

func TestAI_Chat_ProviderFailure(t *testing.T) {
	client := &mocks.AIClient{}
	client.On("Chat", mock.Anything, "hello").Return("", errors.New("upstream 500"))

	s := NewAI(client, testutil.MakeNoopLogger())

	_, err := s.Chat(context.Background(), "hello")

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 502, apiErr.Status)
	assert.Equal(t, "ai request failed", apiErr.Message)
}
