package service

import (
	"context"

	"github.com/avorobev/chatlog/models"
)

// ClientAuthService defines the client-side contract for account registration
// and authentication against the chatlog server.
type ClientAuthService interface {
	// Register creates a new account on the server.
	// Returns store.ErrEmailAlreadyExists when the email is taken.
	Register(ctx context.Context, email, password string) error

	// Login authenticates the user. On success the underlying adapter retains
	// the issued access and refresh tokens for subsequent calls.
	// Returns ErrWrongPassword when the credentials are rejected.
	Login(ctx context.Context, email, password string) error
}

// ClientChatService defines the client-side contract for chatting and for
// managing the stored history. All operations require a prior Login.
//
// Implementations keep a local history cache keyed by the account email so the
// last fetched history stays readable when the server is unreachable.
type ClientChatService interface {
	// Send submits a prompt and returns the stored exchange. The exchange is
	// also written through to the local history cache.
	Send(ctx context.Context, email, prompt string) (models.Message, error)

	// History returns the user's chat history, oldest message first. When the
	// server cannot be reached the locally cached history is returned instead.
	History(ctx context.Context, email string) ([]models.Message, error)

	// ClearHistory deletes the user's entire history on the server and in the
	// local cache.
	ClearHistory(ctx context.Context, email string) error
}
