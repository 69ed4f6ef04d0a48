package service

import (
	"github.com/avorobev/chatlog/internal/adapter"
	"github.com/avorobev/chatlog/internal/config"
	"github.com/avorobev/chatlog/internal/logger"
	"github.com/avorobev/chatlog/internal/store"
)

type Services struct {
	AuthService    AuthService
	ChatService    ChatService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, completion adapter.CompletionClient, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		ChatService:    NewChatService(storages.MessageRepository, storages.UserRepository, completion, logger),
		AppInfoService: appInfoService,
	}, nil
}
