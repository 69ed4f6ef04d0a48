package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avorobev/chatlog/internal/app"
	"github.com/avorobev/chatlog/internal/logger"
	"github.com/avorobev/chatlog/internal/service"
	"github.com/avorobev/chatlog/internal/store"
	"github.com/avorobev/chatlog/internal/utils"
	"github.com/avorobev/chatlog/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already exists")
			writeMessage(w, app.MsgEmailAlreadyInUse, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			writeMessage(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.RegisterResponse{
		Message: app.MsgUserRegistered,
		UserID:  registeredUser.ID,
	}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	foundUser, token, err := h.services.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("no user was found/wrong password")
			writeMessage(w, app.MsgInvalidCredentials, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			writeMessage(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("user_id", foundUser.ID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.LoginResponse{
		AccessToken:  token.SignedString,
		RefreshToken: foundUser.RefreshToken,
		UserID:       foundUser.ID,
		Email:        foundUser.Email,
	}, http.StatusOK)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	foundUser, token, err := h.services.AuthService.Refresh(ctx, req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrUnknownRefreshToken):
			log.Err(err).Msg("refresh token is not in database")
			writeMessage(w, app.MsgInvalidRefreshToken, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during token refresh")
			writeMessage(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.RefreshResponse{
		AccessToken:  token.SignedString,
		RefreshToken: foundUser.RefreshToken,
	}, http.StatusOK)
}

// writeMessage writes a {"message": ...} JSON body with the given status.
func writeMessage(w http.ResponseWriter, message string, statusCode int) {
	utils.WriteJSON(w, models.MessageResponse{Message: message}, statusCode)
}
