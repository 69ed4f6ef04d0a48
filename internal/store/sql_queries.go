package store

import (
	"github.com/Masterminds/squirrel"

	"github.com/avorobev/chatlog/models"
)

const (
	createUser = `INSERT INTO users (user_id, email, password_hash, refresh_token)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, email, password_hash, refresh_token, created_at;`

	findUserByEmail = `SELECT user_id, email, password_hash, refresh_token, created_at
    FROM users
    WHERE email = $1;`

	findUserByRefreshToken = `SELECT user_id, email, password_hash, refresh_token, created_at
    FROM users
    WHERE refresh_token = $1 AND refresh_token <> '';`

	updateUserRefreshToken = `UPDATE users
    SET refresh_token = $1
    WHERE user_id = $2;`
)

const messageColumns = "message_id, user_id, prompt, response, created_at"

// psql builds all message queries with PostgreSQL-style $N placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func buildInsertMessageQuery(message models.Message) (string, []any, error) {
	return psql.
		Insert(message.TableName()).
		Columns("message_id", "user_id", "prompt", "response").
		Values(message.ID, message.UserID, message.Prompt, message.Response).
		Suffix("RETURNING " + messageColumns).
		ToSql()
}

func buildSelectMessagesQuery(userID string) (string, []any, error) {
	return psql.
		Select("message_id", "user_id", "prompt", "response", "created_at").
		From(models.Message{}.TableName()).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at ASC").
		ToSql()
}

func buildDeleteMessageQuery(userID string, messageID string) (string, []any, error) {
	return psql.
		Delete(models.Message{}.TableName()).
		Where(squirrel.Eq{"message_id": messageID, "user_id": userID}).
		ToSql()
}
