// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Vorobev

// Package adapter provides transport-layer abstractions for talking to remote
// services over HTTP.
//
// [ServerAdapter] decouples the client service layer from the chatlog server
// protocol; [CompletionClient] decouples the server chat service from the
// upstream completion API. Both ship resty-based implementations.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401, [ErrBadRequest] for 400).
package adapter

import (
	"context"

	"github.com/avorobev/chatlog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the chatlog
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called after a successful Login or
	// Refresh.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account on the server. Returns
	// [ErrBadRequest] (wrapped) when the email is already taken.
	Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error)

	// Login authenticates the user. On success the returned access token is
	// stored via SetToken and the refresh token is retained for Refresh.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// Refresh exchanges the retained refresh token for a fresh access token
	// and stores it via SetToken. Returns [ErrUnauthorized] (wrapped) when the
	// server no longer recognises the refresh token.
	Refresh(ctx context.Context) (models.RefreshResponse, error)

	// SendMessage forwards a chat prompt to the server and returns the stored
	// exchange. Requires a bearer token.
	SendMessage(ctx context.Context, prompt string) (models.ChatResponse, error)

	// GetHistory retrieves the authenticated user's chat history, oldest
	// message first.
	GetHistory(ctx context.Context) (models.HistoryResponse, error)

	// ClearHistory deletes the authenticated user's entire chat history.
	ClearHistory(ctx context.Context) error
}

// CompletionClient produces a completion for a chat prompt by calling an
// upstream completion API.
type CompletionClient interface {
	// Complete returns the completion text for prompt. A non-2xx upstream
	// response is reported as a *[UpstreamError]; transport and decoding
	// failures are returned as ordinary errors.
	Complete(ctx context.Context, prompt string) (string, error)
}
