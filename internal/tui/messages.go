package tui

import (
	"github.com/avorobev/chatlog/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches RootModel to another page. Payload, when non-nil, is
// re-dispatched as a message to the target page.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult finishes the login flow.
type LoginResult struct {
	Email string
	Err   error
}

// RegisterResult finishes a registration attempt.
type RegisterResult struct {
	Email string
	Err   error
}

// RegisterSuccessNotice is shown on the menu after a successful registration.
type RegisterSuccessNotice struct {
	Email string
}

type historyLoadedMsg struct {
	messages []models.Message
	err      error
}

type messageSentMsg struct {
	message models.Message
	err     error
}

type historyClearedMsg struct {
	err error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
