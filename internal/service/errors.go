package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrUnknownRefreshToken     = errors.New("unknown refresh token")

	ErrVersionIsNotSpecified = errors.New("version is not specified")
)
