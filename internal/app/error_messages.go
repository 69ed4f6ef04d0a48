// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Vorobev

// Package app contains shared application-layer constants used across the
// chatlog server handlers and the client-side adapter error mapping.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgUserRegistered is the acknowledgement body sent after a successful
	// registration.
	MsgUserRegistered = "User registered successfully!"

	// MsgEmailAlreadyInUse is returned when a registration attempt is
	// rejected because an account with the requested email already exists.
	MsgEmailAlreadyInUse = "Email is already in use!"

	// MsgInvalidCredentials is returned when the supplied email/password
	// combination does not match any existing user record.
	MsgInvalidCredentials = "Invalid email or password"

	// MsgInvalidRefreshToken is returned when the presented refresh token
	// does not belong to any user.
	MsgInvalidRefreshToken = "Refresh token is not in database!"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoUserEmailProvided is returned when a handler requires the
	// authenticated user's email (extracted from the JWT subject) but none is
	// present in the request context.
	MsgNoUserEmailProvided = "no user email provided"

	// MsgNoPromptProvided is returned when a chat request arrives with an
	// empty prompt.
	MsgNoPromptProvided = "no prompt provided"
)
