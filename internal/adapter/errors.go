package adapter

import "errors"

// Transport-agnostic sentinel errors produced by mapHTTPError. Callers match
// them with [errors.Is].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	// ErrNoRefreshToken is returned by Refresh when no refresh token has been
	// obtained yet (the client never logged in).
	ErrNoRefreshToken = errors.New("no refresh token available")
)
