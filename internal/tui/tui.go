package tui

import (
	"context"
	"errors"

	"github.com/avorobev/chatlog/internal/logger"
	"github.com/avorobev/chatlog/internal/service"
	"github.com/avorobev/chatlog/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("вышел из программы")

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services, buildInfo: buildInfo}, nil
}

// LoginFlow runs the menu/login/register screens until the user authenticates
// or quits. Returns the authenticated account email.
func (t *TUI) LoginFlow(ctx context.Context) (email string, err error) {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(ctx, t.services.AuthService),
		"register": NewRegisterModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, "menu", t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return "", runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if result.quitByUser {
		return "", ErrUserQuit
	}

	return result.resultEmail, nil
}

// MainLoop runs the chat screen for the authenticated user. Returns
// logout=true when the user chose to log out rather than quit.
func (t *TUI) MainLoop(ctx context.Context, email string) (logout bool, err error) {
	model := newChatModel(ctx, t.services, email)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(chatModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
