package service

import (
	"context"
	"fmt"

	"github.com/avorobev/chatlog/internal/adapter"
	"github.com/avorobev/chatlog/internal/logger"
	"github.com/avorobev/chatlog/models"
)

type clientAuthService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter, logger: logger}
}

func (a *clientAuthService) Register(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return fmt.Errorf("register: %w", ErrInvalidDataProvided)
	}

	_, err := a.adapter.Register(ctx, models.RegisterRequest{Email: email, Password: password})
	if err != nil {
		a.logger.Err(err).Str("func", "Register").Msg("registration on server failed")
		return mapAdapterError(err)
	}

	return nil
}

func (a *clientAuthService) Login(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return fmt.Errorf("login: %w", ErrInvalidDataProvided)
	}

	// The adapter retains the issued access and refresh tokens.
	_, err := a.adapter.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		a.logger.Err(err).Str("func", "Login").Msg("login on server failed")
		return mapAdapterError(err)
	}

	return nil
}
