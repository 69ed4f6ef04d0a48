package models

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest is the body of POST /auth/refresh. It carries the opaque
// refresh token issued at login.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	Prompt string `json:"prompt"`
}
