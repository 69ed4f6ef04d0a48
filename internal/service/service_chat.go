package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avorobev/chatlog/internal/adapter"
	"github.com/avorobev/chatlog/internal/logger"
	"github.com/avorobev/chatlog/internal/store"
	"github.com/avorobev/chatlog/internal/utils"
	"github.com/avorobev/chatlog/models"
)

// chatService is the concrete implementation of ChatService. It forwards
// prompts to the upstream completion API and persists every exchange through
// the message repository.
type chatService struct {
	messageRepository store.MessageRepository
	userRepository    store.UserRepository
	completion        adapter.CompletionClient
	uuid              *utils.UUIDGenerator
	logger            *logger.Logger
}

// NewChatService constructs a ChatService wired to the given repositories and
// completion client.
func NewChatService(
	messageRepository store.MessageRepository,
	userRepository store.UserRepository,
	completion adapter.CompletionClient,
	logger *logger.Logger,
) ChatService {
	return &chatService{
		messageRepository: messageRepository,
		userRepository:    userRepository,
		completion:        completion,
		uuid:              utils.NewUUIDGenerator(),
		logger:            logger,
	}
}

// SendMessage obtains a completion for prompt and persists the exchange.
//
// Completion failures are absorbed, not propagated: a non-OK upstream status
// or a transport error is rendered into the response text and the exchange is
// stored and returned as if it succeeded. Only validation and storage
// failures surface as errors.
//
// Returns the stored message or:
//   - ErrInvalidDataProvided if email or prompt is empty.
//   - A wrapped storage error if the user lookup or message insert fails.
func (s *chatService) SendMessage(ctx context.Context, email, prompt string) (models.Message, error) {
	log := logger.FromContext(ctx)

	if email == "" || prompt == "" {
		log.Error().Str("email", email).Msg("invalid chat data provided")
		return models.Message{}, ErrInvalidDataProvided
	}

	responseText := s.complete(ctx, prompt)

	user, err := s.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.Message{}, fmt.Errorf("user search by email failed: %w", err)
	}

	message := models.Message{
		ID:       s.uuid.Generate(),
		UserID:   user.ID,
		Prompt:   prompt,
		Response: responseText,
	}

	savedMessage, err := s.messageRepository.SaveMessage(ctx, message)
	if err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("message save ended with error")
		return models.Message{}, fmt.Errorf("message save ended with error: %w", err)
	}

	return savedMessage, nil
}

// complete calls the completion API and renders any failure into the response
// text so the exchange is still recorded.
func (s *chatService) complete(ctx context.Context, prompt string) string {
	log := logger.FromContext(ctx)

	text, err := s.completion.Complete(ctx, prompt)
	if err == nil {
		return text
	}

	var upstreamErr *adapter.UpstreamError
	if errors.As(err, &upstreamErr) {
		log.Warn().
			Int("status", upstreamErr.Status).
			Msg("completion api error stored as response")
		return fmt.Sprintf("Error from AI: %d - %s", upstreamErr.Status, upstreamErr.Body)
	}

	log.Warn().Err(err).Msg("completion transport error stored as response")
	return fmt.Sprintf("Sorry, I am having trouble connecting to the AI right now. (%s)", err)
}

// GetHistory returns every stored exchange for the user, oldest first.
//
// Returns an empty slice for a user with no history, or:
//   - ErrInvalidDataProvided if email is empty.
//   - A wrapped storage error if a repository call fails.
func (s *chatService) GetHistory(ctx context.Context, email string) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	if email == "" {
		log.Error().Msg("empty email provided")
		return nil, ErrInvalidDataProvided
	}

	user, err := s.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return nil, fmt.Errorf("user search by email failed: %w", err)
	}

	messages, err := s.messageRepository.GetMessagesByUser(ctx, user.ID)
	if err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("history fetch ended with error")
		return nil, fmt.Errorf("history fetch ended with error: %w", err)
	}

	return messages, nil
}

// ClearHistory deletes every stored exchange for the user.
//
// The history is snapshotted first and each message is deleted individually;
// a failure partway leaves the earlier deletions in place.
//
// Returns nil on success, or:
//   - ErrInvalidDataProvided if email is empty.
//   - A wrapped storage error if a lookup or delete fails.
func (s *chatService) ClearHistory(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	if email == "" {
		log.Error().Msg("empty email provided")
		return ErrInvalidDataProvided
	}

	user, err := s.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return fmt.Errorf("user search by email failed: %w", err)
	}

	// snapshot before deleting
	messages, err := s.messageRepository.GetMessagesByUser(ctx, user.ID)
	if err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("history fetch ended with error")
		return fmt.Errorf("history fetch ended with error: %w", err)
	}

	for _, message := range messages {
		if err := s.messageRepository.DeleteMessage(ctx, user.ID, message.ID); err != nil {
			log.Err(err).
				Str("user_id", user.ID).
				Str("message_id", message.ID).
				Msg("message deletion ended with error")
			return fmt.Errorf("message deletion ended with error: %w", err)
		}
	}

	return nil
}
