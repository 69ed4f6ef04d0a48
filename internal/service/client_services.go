package service

import (
	"github.com/avorobev/chatlog/internal/adapter"
	"github.com/avorobev/chatlog/internal/logger"
	"github.com/avorobev/chatlog/internal/store"
)

type ClientServices struct {
	AuthService ClientAuthService
	ChatService ClientChatService
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService: NewClientAuthService(serverAdapter, logger),
		ChatService: NewClientChatService(serverAdapter, localStore.HistoryCache, logger),
	}
}
