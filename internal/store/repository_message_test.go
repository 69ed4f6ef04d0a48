package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/avorobev/chatlog/internal/logger"
	"github.com/avorobev/chatlog/models"
)

func newTestMessageRepo(t *testing.T) (*messageRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &messageRepository{
		DB:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func TestSaveMessage_Success(t *testing.T) {
	repo, mock, db := newTestMessageRepo(t)
	defer db.Close()

	ctx := context.Background()
	message := models.Message{
		ID:       "7b1d9a00-0000-0000-0000-000000000001",
		UserID:   "2f8a7c1e-0000-0000-0000-000000000001",
		Prompt:   "hello",
		Response: "hi there",
	}

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"message_id", "user_id", "prompt", "response", "created_at"}).
		AddRow(message.ID, message.UserID, message.Prompt, message.Response, now)

	mock.ExpectQuery("INSERT INTO messages").
		WithArgs(message.ID, message.UserID, message.Prompt, message.Response).
		WillReturnRows(rows)

	saved, err := repo.SaveMessage(ctx, message)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.ID != message.ID {
		t.Errorf("expected ID=%s, got %s", message.ID, saved.ID)
	}
	if !saved.Timestamp.Equal(now) {
		t.Errorf("expected timestamp %v, got %v", now, saved.Timestamp)
	}
}

func TestSaveMessage_ExecError(t *testing.T) {
	repo, mock, db := newTestMessageRepo(t)
	defer db.Close()

	ctx := context.Background()
	message := models.Message{ID: "id", UserID: "user", Prompt: "p", Response: "r"}

	mock.ExpectQuery("INSERT INTO messages").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.SaveMessage(ctx, message)
	if !errors.Is(err, ErrMessageNotSaved) {
		t.Fatalf("expected ErrMessageNotSaved, got %v", err)
	}
}

func TestSaveMessage_ScanError(t *testing.T) {
	repo, mock, db := newTestMessageRepo(t)
	defer db.Close()

	ctx := context.Background()
	message := models.Message{ID: "id", UserID: "user", Prompt: "p", Response: "r"}

	rows := sqlmock.
		NewRows([]string{"message_id"}). // intentionally wrong shape → scan error
		AddRow("id")

	mock.ExpectQuery("INSERT INTO messages").
		WillReturnRows(rows)

	_, err := repo.SaveMessage(ctx, message)
	if !errors.Is(err, ErrScanningRow) {
		t.Fatalf("expected ErrScanningRow, got %v", err)
	}
}

func TestGetMessagesByUser_Success(t *testing.T) {
	repo, mock, db := newTestMessageRepo(t)
	defer db.Close()

	ctx := context.Background()
	userID := "2f8a7c1e-0000-0000-0000-000000000001"

	first := time.Now().Add(-time.Minute)
	second := time.Now()
	rows := sqlmock.
		NewRows([]string{"message_id", "user_id", "prompt", "response", "created_at"}).
		AddRow("msg-1", userID, "hello", "hi there", first).
		AddRow("msg-2", userID, "how are you", "fine", second)

	mock.ExpectQuery("SELECT message_id").
		WithArgs(userID).
		WillReturnRows(rows)

	messages, err := repo.GetMessagesByUser(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}
	if messages[0].ID != "msg-1" || messages[1].ID != "msg-2" {
		t.Errorf("unexpected message order: %s, %s", messages[0].ID, messages[1].ID)
	}
}

func TestGetMessagesByUser_Empty(t *testing.T) {
	repo, mock, db := newTestMessageRepo(t)
	defer db.Close()

	ctx := context.Background()
	userID := "2f8a7c1e-0000-0000-0000-000000000001"

	rows := sqlmock.NewRows([]string{"message_id", "user_id", "prompt", "response", "created_at"})

	mock.ExpectQuery("SELECT message_id").
		WithArgs(userID).
		WillReturnRows(rows)

	messages, err := repo.GetMessagesByUser(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(messages) != 0 {
		t.Fatalf("expected empty result, got %d messages", len(messages))
	}
}

func TestGetMessagesByUser_QueryError(t *testing.T) {
	repo, mock, db := newTestMessageRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT message_id").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.GetMessagesByUser(ctx, "some-user")
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestGetMessagesByUser_RowError(t *testing.T) {
	repo, mock, db := newTestMessageRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows([]string{"message_id", "user_id", "prompt", "response", "created_at"}).
		AddRow("msg-1", "user", "hello", "hi", time.Now()).
		RowError(0, errors.New("broken row"))

	mock.ExpectQuery("SELECT message_id").
		WillReturnRows(rows)

	_, err := repo.GetMessagesByUser(ctx, "user")
	if !errors.Is(err, ErrScanningRows) {
		t.Fatalf("expected ErrScanningRows, got %v", err)
	}
}

func TestDeleteMessage_Success(t *testing.T) {
	repo, mock, db := newTestMessageRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM messages").
		WithArgs("msg-1", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteMessage(ctx, "user-1", "msg-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteMessage_NotFound(t *testing.T) {
	repo, mock, db := newTestMessageRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM messages").
		WithArgs("missing", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteMessage(ctx, "user-1", "missing")
	if !errors.Is(err, ErrMessageNotFound) {
		t.Fatalf("expected ErrMessageNotFound, got %v", err)
	}
}

func TestDeleteMessage_ExecError(t *testing.T) {
	repo, mock, db := newTestMessageRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM messages").
		WillReturnError(errors.New("connection reset"))

	err := repo.DeleteMessage(ctx, "user-1", "msg-1")
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}
