package http

import (
	"errors"
	"net/http"

	"github.com/avorobev/chatlog/internal/app"
	"github.com/avorobev/chatlog/internal/service"
	"github.com/avorobev/chatlog/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrUnknownRefreshToken:     http.StatusUnauthorized,

	store.ErrEmailAlreadyExists: http.StatusBadRequest,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrMessageNotFound:    http.StatusNotFound,
	store.ErrMessageNotSaved:    http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError renders err as a {"message": ...} body with the mapped status.
// Server-side failures are masked behind a generic message.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = app.MsgInternalServerError
	}
	writeMessage(w, message, status)
}
