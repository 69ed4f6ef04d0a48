package http

import (
	"encoding/json"
	"net/http"

	"github.com/avorobev/chatlog/internal/app"
	"github.com/avorobev/chatlog/internal/logger"
	"github.com/avorobev/chatlog/internal/utils"
	"github.com/avorobev/chatlog/models"
)

func (h *Handler) sendMessage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	email, ok := utils.GetUserEmailFromContext(r.Context())
	if !ok {
		log.Error().Str("func", "*Handler.sendMessage").Msg(app.MsgNoUserEmailProvided)
		writeMessage(w, app.MsgNoUserEmailProvided, http.StatusUnauthorized)
		return
	}

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.sendMessage").Msg("Invalid JSON was passed")
		writeMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if req.Prompt == "" {
		log.Error().Str("func", "*Handler.sendMessage").Msg(app.MsgNoPromptProvided)
		writeMessage(w, app.MsgNoPromptProvided, http.StatusBadRequest)
		return
	}

	message, err := h.services.ChatService.SendMessage(r.Context(), email, req.Prompt)
	if err != nil {
		log.Err(err).Str("func", "*Handler.sendMessage").Msg("error sending chat message")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, messageToChatResponse(message), http.StatusOK)
}

func (h *Handler) getHistory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	email, ok := utils.GetUserEmailFromContext(r.Context())
	if !ok {
		log.Error().Str("func", "*Handler.getHistory").Msg(app.MsgNoUserEmailProvided)
		writeMessage(w, app.MsgNoUserEmailProvided, http.StatusUnauthorized)
		return
	}

	messages, err := h.services.ChatService.GetHistory(r.Context(), email)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getHistory").Msg("error fetching chat history")
		writeError(w, err)
		return
	}

	history := models.HistoryResponse{Messages: make([]models.ChatResponse, 0, len(messages))}
	for _, message := range messages {
		history.Messages = append(history.Messages, messageToChatResponse(message))
	}

	utils.WriteJSON(w, history, http.StatusOK)
}

func (h *Handler) clearHistory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	email, ok := utils.GetUserEmailFromContext(r.Context())
	if !ok {
		log.Error().Str("func", "*Handler.clearHistory").Msg(app.MsgNoUserEmailProvided)
		writeMessage(w, app.MsgNoUserEmailProvided, http.StatusUnauthorized)
		return
	}

	if err := h.services.ChatService.ClearHistory(r.Context(), email); err != nil {
		log.Err(err).Str("func", "*Handler.clearHistory").Msg("error clearing chat history")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func messageToChatResponse(message models.Message) models.ChatResponse {
	return models.ChatResponse{
		ID:        message.ID,
		Prompt:    message.Prompt,
		Response:  message.Response,
		Timestamp: message.Timestamp,
	}
}
