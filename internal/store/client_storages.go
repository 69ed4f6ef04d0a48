package store

import (
	"context"
	"fmt"

	"github.com/avorobev/chatlog/internal/config"
	"github.com/avorobev/chatlog/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer. Currently it holds only
// [HistoryCache]; additional repositories can be added here as the feature
// set grows.
type ClientStorages struct {
	// HistoryCache is the SQLite-backed local chat history cache.
	HistoryCache HistoryCache
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.CachePath,
//     creating the database file if it does not yet exist.
//  2. Ensures the history cache schema exists.
//  3. Constructs and returns a [ClientStorages] value wired to a fresh
//     [HistoryCache].
//
// Returns an error if the database connection cannot be established or if
// schema creation fails.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	ctx := context.Background()

	db, err := NewConnectSQLite(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if _, err := db.ExecContext(ctx, createHistoryCacheSchema); err != nil {
		return nil, fmt.Errorf("history cache schema creation failed: %w", err)
	}

	return &ClientStorages{
		HistoryCache: NewHistoryCache(db, logger),
	}, nil
}
