// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Vorobev

package service

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/avorobev/chatlog/internal/adapter"
	"github.com/avorobev/chatlog/internal/app"
	"github.com/avorobev/chatlog/internal/store"
	"github.com/avorobev/chatlog/models"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidDataProvided, app.MsgNoPromptProvided:
			return ErrInvalidDataProvided
		case app.MsgEmailAlreadyInUse:
			return store.ErrEmailAlreadyExists
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidCredentials:
			return ErrWrongPassword
		case app.MsgInvalidRefreshToken:
			return ErrUnknownRefreshToken
		}
		return ErrTokenIsExpiredOrInvalid

	case errors.Is(err, adapter.ErrNotFound):
		return store.ErrMessageNotFound
	}

	return err
}

// extractBody extracts the server message from an error of the form
// "bad request: <body>". JSON bodies of the {"message": ...} shape are
// decoded to their message string.
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		msg = msg[idx+2:]
	}

	var body models.MessageResponse
	if jsonErr := json.Unmarshal([]byte(msg), &body); jsonErr == nil && body.Message != "" {
		return body.Message
	}

	return msg
}
