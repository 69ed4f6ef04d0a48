package store

import (
	"context"

	"github.com/avorobev/chatlog/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// HistoryCache is the local chat history cache kept by the client so the
// last fetched history stays readable between sessions. Entries are keyed by
// the account email.
type HistoryCache interface {
	SaveMessages(ctx context.Context, email string, messages ...models.Message) error
	GetMessages(ctx context.Context, email string) ([]models.Message, error)
	Clear(ctx context.Context, email string) error
}
