// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Vorobev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avorobev/chatlog/internal/adapter"
	"github.com/avorobev/chatlog/internal/logger"
	"github.com/avorobev/chatlog/internal/store"
	"github.com/avorobev/chatlog/internal/utils"
	"github.com/avorobev/chatlog/models"
)

// ─────────────────────────────────────────────
// Mocks: store.MessageRepository, adapter.CompletionClient
// ─────────────────────────────────────────────

type mockMessageRepository struct {
	saveFn   func(ctx context.Context, message models.Message) (models.Message, error)
	getFn    func(ctx context.Context, userID string) ([]models.Message, error)
	deleteFn func(ctx context.Context, userID string, messageID string) error
}

func (m *mockMessageRepository) SaveMessage(ctx context.Context, message models.Message) (models.Message, error) {
	if m.saveFn != nil {
		return m.saveFn(ctx, message)
	}
	return message, nil
}

func (m *mockMessageRepository) GetMessagesByUser(ctx context.Context, userID string) ([]models.Message, error) {
	if m.getFn != nil {
		return m.getFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockMessageRepository) DeleteMessage(ctx context.Context, userID string, messageID string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, messageID)
	}
	return nil
}

type mockCompletionClient struct {
	completeFn func(ctx context.Context, prompt string) (string, error)
}

func (m *mockCompletionClient) Complete(ctx context.Context, prompt string) (string, error) {
	if m.completeFn != nil {
		return m.completeFn(ctx, prompt)
	}
	return "", errors.New("not configured")
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func knownUserRepo() *mockUserRepository {
	return &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{ID: "user-1", Email: email}, nil
		},
	}
}

func newTestChatService(messages *mockMessageRepository, users *mockUserRepository, completion *mockCompletionClient) ChatService {
	return &chatService{
		messageRepository: messages,
		userRepository:    users,
		completion:        completion,
		uuid:              utils.NewUUIDGenerator(),
		logger:            logger.Nop(),
	}
}

// ─────────────────────────────────────────────
// SendMessage
// ─────────────────────────────────────────────

func TestSendMessage_Success(t *testing.T) {
	var saved models.Message
	messages := &mockMessageRepository{
		saveFn: func(ctx context.Context, message models.Message) (models.Message, error) {
			saved = message
			return message, nil
		},
	}
	completion := &mockCompletionClient{
		completeFn: func(ctx context.Context, prompt string) (string, error) {
			assert.Equal(t, "hello", prompt)
			return "hi there", nil
		},
	}
	svc := newTestChatService(messages, knownUserRepo(), completion)

	got, err := svc.SendMessage(context.Background(), "alice@example.com", "hello")

	require.NoError(t, err)
	assert.Equal(t, "user-1", saved.UserID)
	assert.Equal(t, "hello", saved.Prompt)
	assert.Equal(t, "hi there", saved.Response)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, saved, got)
}

func TestSendMessage_UpstreamErrorStoredAsResponse(t *testing.T) {
	var saved models.Message
	messages := &mockMessageRepository{
		saveFn: func(ctx context.Context, message models.Message) (models.Message, error) {
			saved = message
			return message, nil
		},
	}
	completion := &mockCompletionClient{
		completeFn: func(ctx context.Context, prompt string) (string, error) {
			return "", &adapter.UpstreamError{Status: 429, Body: "rate limited"}
		},
	}
	svc := newTestChatService(messages, knownUserRepo(), completion)

	got, err := svc.SendMessage(context.Background(), "alice@example.com", "hello")

	require.NoError(t, err)
	assert.Equal(t, "Error from AI: 429 - rate limited", saved.Response)
	assert.Equal(t, "Error from AI: 429 - rate limited", got.Response)
}

func TestSendMessage_ConnectionErrorStoredAsResponse(t *testing.T) {
	var saved models.Message
	messages := &mockMessageRepository{
		saveFn: func(ctx context.Context, message models.Message) (models.Message, error) {
			saved = message
			return message, nil
		},
	}
	completion := &mockCompletionClient{
		completeFn: func(ctx context.Context, prompt string) (string, error) {
			return "", errors.New("connection refused")
		},
	}
	svc := newTestChatService(messages, knownUserRepo(), completion)

	_, err := svc.SendMessage(context.Background(), "alice@example.com", "hello")

	require.NoError(t, err)
	assert.Equal(t, "Sorry, I am having trouble connecting to the AI right now. (connection refused)", saved.Response)
}

func TestSendMessage_EmptyInput(t *testing.T) {
	svc := newTestChatService(&mockMessageRepository{}, knownUserRepo(), &mockCompletionClient{})

	_, err := svc.SendMessage(context.Background(), "", "hello")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.SendMessage(context.Background(), "alice@example.com", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestSendMessage_UnknownUser(t *testing.T) {
	completion := &mockCompletionClient{
		completeFn: func(ctx context.Context, prompt string) (string, error) {
			return "hi there", nil
		},
	}
	svc := newTestChatService(&mockMessageRepository{}, &mockUserRepository{}, completion)

	_, err := svc.SendMessage(context.Background(), "ghost@example.com", "hello")
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestSendMessage_SaveError(t *testing.T) {
	messages := &mockMessageRepository{
		saveFn: func(ctx context.Context, message models.Message) (models.Message, error) {
			return models.Message{}, store.ErrMessageNotSaved
		},
	}
	completion := &mockCompletionClient{
		completeFn: func(ctx context.Context, prompt string) (string, error) {
			return "hi there", nil
		},
	}
	svc := newTestChatService(messages, knownUserRepo(), completion)

	_, err := svc.SendMessage(context.Background(), "alice@example.com", "hello")
	assert.ErrorIs(t, err, store.ErrMessageNotSaved)
}

// ─────────────────────────────────────────────
// GetHistory
// ─────────────────────────────────────────────

func TestGetHistory_Success(t *testing.T) {
	want := []models.Message{
		{ID: "m-1", UserID: "user-1", Prompt: "first", Response: "one"},
		{ID: "m-2", UserID: "user-1", Prompt: "second", Response: "two"},
	}
	messages := &mockMessageRepository{
		getFn: func(ctx context.Context, userID string) ([]models.Message, error) {
			assert.Equal(t, "user-1", userID)
			return want, nil
		},
	}
	svc := newTestChatService(messages, knownUserRepo(), &mockCompletionClient{})

	got, err := svc.GetHistory(context.Background(), "alice@example.com")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetHistory_UnknownUser(t *testing.T) {
	svc := newTestChatService(&mockMessageRepository{}, &mockUserRepository{}, &mockCompletionClient{})

	_, err := svc.GetHistory(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

// ─────────────────────────────────────────────
// ClearHistory
// ─────────────────────────────────────────────

func TestClearHistory_DeletesEveryMessage(t *testing.T) {
	var deleted []string
	messages := &mockMessageRepository{
		getFn: func(ctx context.Context, userID string) ([]models.Message, error) {
			return []models.Message{
				{ID: "m-1", UserID: userID},
				{ID: "m-2", UserID: userID},
				{ID: "m-3", UserID: userID},
			}, nil
		},
		deleteFn: func(ctx context.Context, userID string, messageID string) error {
			assert.Equal(t, "user-1", userID)
			deleted = append(deleted, messageID)
			return nil
		},
	}
	svc := newTestChatService(messages, knownUserRepo(), &mockCompletionClient{})

	err := svc.ClearHistory(context.Background(), "alice@example.com")

	require.NoError(t, err)
	assert.Equal(t, []string{"m-1", "m-2", "m-3"}, deleted)
}

func TestClearHistory_StopsOnFirstDeleteError(t *testing.T) {
	var deleted []string
	messages := &mockMessageRepository{
		getFn: func(ctx context.Context, userID string) ([]models.Message, error) {
			return []models.Message{
				{ID: "m-1", UserID: userID},
				{ID: "m-2", UserID: userID},
				{ID: "m-3", UserID: userID},
			}, nil
		},
		deleteFn: func(ctx context.Context, userID string, messageID string) error {
			if messageID == "m-2" {
				return store.ErrMessageNotFound
			}
			deleted = append(deleted, messageID)
			return nil
		},
	}
	svc := newTestChatService(messages, knownUserRepo(), &mockCompletionClient{})

	err := svc.ClearHistory(context.Background(), "alice@example.com")

	assert.ErrorIs(t, err, store.ErrMessageNotFound)
	assert.Equal(t, []string{"m-1"}, deleted)
}

func TestClearHistory_EmptyHistory(t *testing.T) {
	svc := newTestChatService(&mockMessageRepository{}, knownUserRepo(), &mockCompletionClient{})

	err := svc.ClearHistory(context.Background(), "alice@example.com")
	assert.NoError(t, err)
}
