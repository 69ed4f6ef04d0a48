package service

import (
	"context"

	"github.com/avorobev/chatlog/models"
)

// AuthService owns the account lifecycle: registration, credential checks,
// and both token kinds (JWT access tokens and opaque refresh tokens).
type AuthService interface {
	// RegisterUser creates a new account with a bcrypt-hashed password.
	RegisterUser(ctx context.Context, email, password string) (models.User, error)

	// Login verifies the credentials, rotates the stored refresh token, and
	// issues a fresh access token. The returned user carries the new refresh
	// token.
	Login(ctx context.Context, email, password string) (models.User, models.Token, error)

	// Refresh exchanges a stored refresh token for a fresh access token. The
	// refresh token itself is returned unchanged.
	Refresh(ctx context.Context, refreshToken string) (models.User, models.Token, error)

	// ParseToken validates a raw access token string and returns the decoded
	// token model.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ChatService forwards prompts to the completion API and keeps the full
// prompt/response log per user.
type ChatService interface {
	// SendMessage obtains a completion for prompt and persists the exchange
	// under the user identified by email. Upstream completion failures do not
	// fail the call; the error text is stored as the response instead.
	SendMessage(ctx context.Context, email, prompt string) (models.Message, error)

	// GetHistory returns every stored exchange for the user, oldest first.
	GetHistory(ctx context.Context, email string) ([]models.Message, error)

	// ClearHistory deletes every stored exchange for the user.
	ClearHistory(ctx context.Context, email string) error
}

// AppInfoService exposes build/runtime metadata about the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
