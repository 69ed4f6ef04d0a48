package models

import "time"

// RegisterResponse is returned by POST /auth/register on success.
type RegisterResponse struct {
	// Message is a human-readable confirmation string.
	Message string `json:"message"`

	// UserID is the server-generated identifier of the new account.
	UserID string `json:"userId"`
}

// LoginResponse is returned by POST /auth/login on success. It carries the
// full credential pair plus the identity it was issued for.
type LoginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	UserID       string `json:"userId"`
	Email        string `json:"email"`
}

// RefreshResponse is returned by POST /auth/refresh on success.
// RefreshToken echoes back the token from the request unchanged: refresh
// tokens are not rotated on use, only on login.
type RefreshResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// ChatResponse is the wire shape of a single stored exchange, returned by
// POST /chat and in the history listing.
type ChatResponse struct {
	ID        string    `json:"id"`
	Prompt    string    `json:"prompt"`
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}

// HistoryResponse is returned by GET /chat/history. Messages are ordered by
// creation time, oldest first.
type HistoryResponse struct {
	Messages []ChatResponse `json:"messages"`
}

// MessageResponse is a generic error/notice body used for 400-class replies.
type MessageResponse struct {
	Message string `json:"message"`
}
