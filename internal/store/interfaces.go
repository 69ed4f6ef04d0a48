package store

import (
	"context"

	"github.com/avorobev/chatlog/models"
)

// UserRepository persists user accounts and their refresh tokens.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByRefreshToken(ctx context.Context, refreshToken string) (models.User, error)
	UpdateRefreshToken(ctx context.Context, userID string, refreshToken string) error
}

// MessageRepository persists chat messages: one record per prompt/response
// exchange.
type MessageRepository interface {
	SaveMessage(ctx context.Context, message models.Message) (models.Message, error)
	GetMessagesByUser(ctx context.Context, userID string) ([]models.Message, error)
	DeleteMessage(ctx context.Context, userID string, messageID string) error
}
