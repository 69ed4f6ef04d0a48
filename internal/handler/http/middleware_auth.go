package http

import (
	"context"
	"net/http"

	"github.com/avorobev/chatlog/internal/app"
	"github.com/avorobev/chatlog/internal/logger"
	"github.com/avorobev/chatlog/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], and on success stores the
// authenticated user's email in the request context under
// [utils.UserEmailCtxKey] before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized when the header
// is absent ([ErrEmptyAuthorizationHeader]), cannot be parsed as a bearer
// token, or carries an expired or otherwise invalid token.
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			writeMessage(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			writeMessage(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			writeMessage(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		email, err := token.GetEmail()
		if err != nil || email == "" {
			log.Err(err).Msg("token carries no subject")
			writeMessage(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		// Store the authenticated user's email in the context so that
		// downstream handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserEmailCtxKey, email)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
