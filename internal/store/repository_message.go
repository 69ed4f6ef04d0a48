package store

import (
	"context"
	"fmt"

	"github.com/avorobev/chatlog/internal/logger"
	"github.com/avorobev/chatlog/models"
)

// messageRepository is the PostgreSQL-backed implementation of
// [MessageRepository]. It executes all chat message operations against the
// "messages" table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced
// with structured fields (user_id, message_id, etc.).
type messageRepository struct {
	*DB
	logger *logger.Logger
}

// NewMessageRepository constructs a [MessageRepository] backed by the
// provided database connection and logger.
//
// The logger parameter is stored for fallback logging; most methods prefer
// the context-scoped logger obtained via [logger.FromContext].
func NewMessageRepository(db *DB, logger *logger.Logger) MessageRepository {
	return &messageRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveMessage persists one prompt/response exchange and returns the stored
// record with the server-assigned timestamp.
//
// Returns an error if the query cannot be built, executed, or if the
// returned row cannot be scanned.
func (m *messageRepository) SaveMessage(ctx context.Context, message models.Message) (models.Message, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertMessageQuery(message)
	if err != nil {
		log.Err(err).
			Str("func", "messageRepository.SaveMessage").
			Str("user_id", message.UserID).
			Msg("failed to create query")
		return models.Message{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var saved models.Message
	row := m.DB.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "messageRepository.SaveMessage").
			Str("user_id", message.UserID).
			Bool("retryable", m.DB.retryable(err)).
			Msg("failed to execute insert for chat message")
		return models.Message{}, fmt.Errorf("%w: %w", ErrMessageNotSaved, err)
	}

	if scanErr := row.Scan(&saved.ID, &saved.UserID, &saved.Prompt, &saved.Response, &saved.Timestamp); scanErr != nil {
		log.Err(scanErr).
			Str("func", "messageRepository.SaveMessage").
			Str("user_id", message.UserID).
			Msg("failed to scan message row")
		return models.Message{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return saved, nil
}

// GetMessagesByUser retrieves every chat message owned by the given user,
// oldest first.
//
// Returns an empty slice when no records are found.
func (m *messageRepository) GetMessagesByUser(ctx context.Context, userID string) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectMessagesQuery(userID)
	if err != nil {
		log.Err(err).
			Str("func", "messageRepository.GetMessagesByUser").
			Str("user_id", userID).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, queryErr := m.DB.QueryContext(ctx, query, args...)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "messageRepository.GetMessagesByUser").
			Str("user_id", userID).
			Bool("retryable", m.DB.retryable(queryErr)).
			Msg("failed to execute query for getting user messages")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	results := make([]models.Message, 0, 50)

	for rows.Next() {
		var item models.Message

		scanErr := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.Prompt,
			&item.Response,
			&item.Timestamp,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "messageRepository.GetMessagesByUser").
				Str("user_id", userID).
				Msg("failed to scan message row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "messageRepository.GetMessagesByUser").
			Str("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// DeleteMessage removes a single chat message owned by the given user.
//
// Error handling:
//   - Statement failure → wrapped in [ErrExecutingStatement].
//   - Zero affected rows → [ErrMessageNotFound].
func (m *messageRepository) DeleteMessage(ctx context.Context, userID string, messageID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteMessageQuery(userID, messageID)
	if err != nil {
		log.Err(err).
			Str("func", "messageRepository.DeleteMessage").
			Str("user_id", userID).
			Str("message_id", messageID).
			Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, execErr := m.DB.ExecContext(ctx, query, args...)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "messageRepository.DeleteMessage").
			Str("user_id", userID).
			Str("message_id", messageID).
			Bool("retryable", m.DB.retryable(execErr)).
			Msg("failed to execute delete for chat message")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "messageRepository.DeleteMessage").Msg("failed to read affected rows")
		return err
	}
	if affected == 0 {
		return ErrMessageNotFound
	}

	return nil
}
