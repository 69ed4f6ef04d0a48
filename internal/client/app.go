package client

import (
	"context"
	"errors"

	"github.com/avorobev/chatlog/internal/logger"
	"github.com/avorobev/chatlog/internal/service"
	"github.com/avorobev/chatlog/internal/tui"
)

type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, log *logger.Logger) *App {
	return &App{services: services, tui: ui, logger: log}
}

// Run drives the login flow and the chat screen until the user exits.
// Logging out returns the user to the login flow instead of exiting.
func (a *App) Run() error {
	ctx := context.Background()

	for {
		email, err := a.tui.LoginFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}

		a.logger.Info().Str("func", "*App.Run").Str("email", email).Msg("user authenticated")

		logout, err := a.tui.MainLoop(ctx, email)
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}

		a.logger.Info().Str("func", "*App.Run").Msg("user logged out")
	}
}
