package store

import (
	"context"
	"fmt"

	"github.com/avorobev/chatlog/internal/config"
	"github.com/avorobev/chatlog/internal/logger"
)

// Storages groups the server-side repositories into a single value that can
// be passed to the service layer.
type Storages struct {
	UserRepository    UserRepository
	MessageRepository MessageRepository
}

// NewStorages initialises the server storage layer: it connects to
// PostgreSQL, applies pending migrations, and wires the repositories.
func NewStorages(ctx context.Context, cfg config.DB, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		MessageRepository: NewMessageRepository(db, logger),
	}, nil
}
