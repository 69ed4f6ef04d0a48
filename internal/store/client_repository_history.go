package store

import (
	"context"
	"fmt"

	"github.com/avorobev/chatlog/internal/logger"
	"github.com/avorobev/chatlog/models"
)

type historyCache struct {
	*DB
	logger *logger.Logger
}

// NewHistoryCache constructs a [HistoryCache] backed by the provided SQLite
// connection and logger.
func NewHistoryCache(db *DB, logger *logger.Logger) HistoryCache {
	return &historyCache{
		DB:     db,
		logger: logger,
	}
}

func (h *historyCache) SaveMessages(ctx context.Context, email string, messages ...models.Message) error {
	log := logger.FromContext(ctx)

	for _, item := range messages {
		_, err := h.DB.ExecContext(ctx, saveCachedMessage,
			item.ID,
			email,
			item.Prompt,
			item.Response,
			item.Timestamp,
		)
		if err != nil {
			log.Err(err).
				Str("func", "historyCache.SaveMessages").
				Str("message_id", item.ID).
				Msg("failed to execute upsert for cached message")
			return fmt.Errorf("failed to cache message (message_id=%s): %w", item.ID, err)
		}
	}

	return nil
}

func (h *historyCache) GetMessages(ctx context.Context, email string) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	rows, err := h.DB.QueryContext(ctx, getCachedMessages, email)
	if err != nil {
		log.Err(err).
			Str("func", "historyCache.GetMessages").
			Msg("failed to execute query for cached history")
		return nil, fmt.Errorf("failed to query cached history: %w", err)
	}
	defer rows.Close()

	var items []models.Message

	for rows.Next() {
		var item models.Message

		if scanErr := rows.Scan(&item.ID, &item.Prompt, &item.Response, &item.Timestamp); scanErr != nil {
			log.Err(scanErr).
				Str("func", "historyCache.GetMessages").
				Msg("failed to scan cached message row")
			return nil, fmt.Errorf("failed to scan cached message row: %w", scanErr)
		}

		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "historyCache.GetMessages").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating cached history rows: %w", rowsErr)
	}

	return items, nil
}

func (h *historyCache) Clear(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	if _, err := h.DB.ExecContext(ctx, clearCachedMessages, email); err != nil {
		log.Err(err).
			Str("func", "historyCache.Clear").
			Msg("failed to clear cached history")
		return fmt.Errorf("failed to clear cached history: %w", err)
	}

	return nil
}
