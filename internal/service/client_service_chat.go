// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Vorobev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avorobev/chatlog/internal/adapter"
	"github.com/avorobev/chatlog/internal/logger"
	"github.com/avorobev/chatlog/internal/store"
	"github.com/avorobev/chatlog/models"
)

type clientChatService struct {
	adapter adapter.ServerAdapter
	cache   store.HistoryCache
	logger  *logger.Logger
}

func NewClientChatService(serverAdapter adapter.ServerAdapter, cache store.HistoryCache, logger *logger.Logger) ClientChatService {
	return &clientChatService{adapter: serverAdapter, cache: cache, logger: logger}
}

func (c *clientChatService) Send(ctx context.Context, email, prompt string) (models.Message, error) {
	if prompt == "" {
		return models.Message{}, fmt.Errorf("send: %w", ErrInvalidDataProvided)
	}

	var resp models.ChatResponse
	err := c.withTokenRefresh(ctx, func() error {
		var sendErr error
		resp, sendErr = c.adapter.SendMessage(ctx, prompt)
		return sendErr
	})
	if err != nil {
		c.logger.Err(err).Str("func", "Send").Msg("send message to server failed")
		return models.Message{}, mapAdapterError(err)
	}

	message := chatResponseToMessage(resp)

	if cacheErr := c.cache.SaveMessages(ctx, email, message); cacheErr != nil {
		// The server copy is authoritative, a stale cache is tolerable.
		c.logger.Err(cacheErr).Str("func", "Send").Msg("history cache write failed")
	}

	return message, nil
}

func (c *clientChatService) History(ctx context.Context, email string) ([]models.Message, error) {
	var resp models.HistoryResponse
	err := c.withTokenRefresh(ctx, func() error {
		var getErr error
		resp, getErr = c.adapter.GetHistory(ctx)
		return getErr
	})
	if err != nil {
		mapped := mapAdapterError(err)
		if isAuthError(mapped) {
			return nil, mapped
		}

		// Server unreachable, fall back to the last cached history.
		c.logger.Err(err).Str("func", "History").Msg("history fetch failed, serving cached copy")
		cached, cacheErr := c.cache.GetMessages(ctx, email)
		if cacheErr != nil {
			return nil, mapped
		}
		return cached, nil
	}

	messages := make([]models.Message, 0, len(resp.Messages))
	for _, item := range resp.Messages {
		messages = append(messages, chatResponseToMessage(item))
	}

	if cacheErr := c.cache.SaveMessages(ctx, email, messages...); cacheErr != nil {
		c.logger.Err(cacheErr).Str("func", "History").Msg("history cache write failed")
	}

	return messages, nil
}

func (c *clientChatService) ClearHistory(ctx context.Context, email string) error {
	err := c.withTokenRefresh(ctx, func() error {
		return c.adapter.ClearHistory(ctx)
	})
	if err != nil {
		c.logger.Err(err).Str("func", "ClearHistory").Msg("history clear on server failed")
		return mapAdapterError(err)
	}

	if cacheErr := c.cache.Clear(ctx, email); cacheErr != nil {
		c.logger.Err(cacheErr).Str("func", "ClearHistory").Msg("history cache clear failed")
	}

	return nil
}

// withTokenRefresh runs call and, when it fails with an expired access token,
// refreshes the token once and retries. Refresh failures surface the original
// unauthorized error so callers can prompt for a new login.
func (c *clientChatService) withTokenRefresh(ctx context.Context, call func() error) error {
	err := call()
	if err == nil || !errors.Is(err, adapter.ErrUnauthorized) {
		return err
	}

	if _, refreshErr := c.adapter.Refresh(ctx); refreshErr != nil {
		c.logger.Err(refreshErr).Str("func", "withTokenRefresh").Msg("token refresh failed")
		return err
	}

	return call()
}

func isAuthError(err error) bool {
	return errors.Is(err, ErrTokenIsExpiredOrInvalid) ||
		errors.Is(err, ErrWrongPassword) ||
		errors.Is(err, ErrUnknownRefreshToken)
}

func chatResponseToMessage(resp models.ChatResponse) models.Message {
	return models.Message{
		ID:        resp.ID,
		Prompt:    resp.Prompt,
		Response:  resp.Response,
		Timestamp: resp.Timestamp,
	}
}
