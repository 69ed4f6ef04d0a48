package store

import (
	"database/sql"

	"github.com/avorobev/chatlog/internal/logger"
	"github.com/avorobev/chatlog/migrations"
)

// DB wraps the raw database connection together with the error classifier
// and a logger. Both the PostgreSQL server store and the SQLite client cache
// build on it.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// Migrate applies all pending embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// retryable reports whether err is classified as transient. A nil classifier
// treats every error as final.
func (db *DB) retryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}
