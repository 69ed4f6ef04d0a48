package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT access token with convenience accessors for
// authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
//
// Email is a cached copy of the "sub" (subject) claim. It is populated during
// token construction or after a successful parse and avoids repeated claim
// lookups downstream.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// Email is the owner identity extracted from the "sub" claim.
	Email string `json:"-"`
}

// GetEmail extracts the user identity from the token's "sub" (subject) claim.
//
// Returns an error if the subject claim is missing or empty.
func (t *Token) GetEmail() (string, error) {
	email, err := t.GetSubject()
	if err != nil {
		return "", err
	}

	return email, nil
}

// String returns the compact JWS serialization of the token
// (the signed, base64url-encoded header.payload.signature string).
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
