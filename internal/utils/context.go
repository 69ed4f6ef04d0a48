// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and other common operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserEmailCtxKey is the key used to store the authenticated user's email in
// the context. The email is the identity claim carried by access tokens, so
// it is what the auth middleware hands down to handlers and services.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.UserEmailCtxKey, "alice@example.com")
var UserEmailCtxKey = contextKey("userEmail")

// GetUserEmailFromContext retrieves the authenticated user's email from the
// context.
//
// Returns the email and an ok flag:
//   - ok == true  — value is found and has the correct string type
//   - ok == false — value is missing, empty, or has an unexpected type
//
// Example usage:
//
//	email, ok := utils.GetUserEmailFromContext(ctx)
//	if !ok {
//	    // handle missing identity in context
//	}
func GetUserEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(UserEmailCtxKey).(string)
	return email, ok && email != ""
}
