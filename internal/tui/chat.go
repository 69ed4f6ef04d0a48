// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Vorobev

package tui

import (
	"context"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/avorobev/chatlog/internal/service"
	"github.com/avorobev/chatlog/models"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const statusDisplayDuration = 3 * time.Second

// chatModel is the main screen of the client. The transcript is shown in a
// scrollable viewport above a textarea used to type the next prompt.
type chatModel struct {
	ctx      context.Context
	services *service.ClientServices
	email    string

	viewport viewport.Model
	input    textarea.Model
	messages []models.Message

	ready           bool
	loading         bool
	sending         bool
	confirmingClear bool
	status          string
	errMsg          string

	logout bool
}

func newChatModel(ctx context.Context, services *service.ClientServices, email string) chatModel {
	effectiveEmail := email
	if effectiveEmail == "" {
		effectiveEmail = getSessionEmail()
	}
	if effectiveEmail != "" {
		setSessionEmail(effectiveEmail)
	}

	input := textarea.New()
	input.Placeholder = "Введите сообщение..."
	input.SetHeight(3)
	input.CharLimit = 4000
	input.ShowLineNumbers = false
	input.Focus()

	return chatModel{
		ctx:      ctx,
		services: services,
		email:    effectiveEmail,
		input:    input,
		loading:  true,
	}
}

func (m chatModel) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.cmdLoadHistory())
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		inputHeight := m.input.Height() + 1
		chromeHeight := 6
		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, msg.Height-inputHeight-chromeHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = msg.Height - inputHeight - chromeHeight
		}
		m.input.SetWidth(msg.Width - 4)
		m.refreshTranscript()
		return m, nil

	case historyLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.messages = msg.messages
		m.errMsg = ""
		m.refreshTranscript()
		m.viewport.GotoBottom()
		return m, nil

	case messageSentMsg:
		m.sending = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.messages = append(m.messages, msg.message)
		m.errMsg = ""
		m.refreshTranscript()
		m.viewport.GotoBottom()
		return m, nil

	case historyClearedMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.messages = nil
		m.errMsg = ""
		m.status = "История очищена"
		m.refreshTranscript()
		return m, m.cmdClearStatusLater()

	case copiedMsg:
		m.status = "Ответ скопирован в буфер обмена"
		return m, m.cmdClearStatusLater()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateWidgets(msg)
}

func (m chatModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmingClear {
		switch msg.String() {
		case "y":
			m.confirmingClear = false
			return m, m.cmdClearHistory()
		case "n", "esc":
			m.confirmingClear = false
			return m, nil
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "ctrl+l":
		clearSessionEmail()
		m.logout = true
		return m, tea.Quit

	case "ctrl+d":
		if len(m.messages) > 0 {
			m.confirmingClear = true
		}
		return m, nil

	case "ctrl+y":
		if len(m.messages) > 0 {
			return m, m.cmdCopyLastResponse()
		}
		return m, nil

	case "ctrl+r":
		m.loading = true
		return m, m.cmdLoadHistory()

	case "enter":
		if m.sending {
			return m, nil
		}
		prompt := strings.TrimSpace(m.input.Value())
		if prompt == "" {
			return m, nil
		}
		m.input.Reset()
		m.sending = true
		m.errMsg = ""
		return m, m.cmdSend(prompt)
	}

	return m.updateWidgets(msg)
}

func (m chatModel) updateWidgets(msg tea.Msg) (tea.Model, tea.Cmd) {
	var inputCmd, viewportCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	m.viewport, viewportCmd = m.viewport.Update(msg)
	return m, tea.Batch(inputCmd, viewportCmd)
}

func (m *chatModel) refreshTranscript() {
	if !m.ready {
		return
	}

	var b strings.Builder
	for i, message := range m.messages {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(titleStyle.Render("Вы: "))
		b.WriteString(message.Prompt)
		b.WriteString("\n")
		b.WriteString("AI: ")
		b.WriteString(message.Response)
		b.WriteString("\n")
	}

	if b.Len() == 0 {
		b.WriteString(helpStyle.Render("История пуста. Напишите первое сообщение."))
	}

	m.viewport.SetContent(b.String())
}

func (m chatModel) View() string {
	if m.confirmingClear {
		return overlayBoxStyle.Render("Очистить всю историю переписки?\n\ny да    n нет")
	}

	var b strings.Builder

	if m.loading {
		b.WriteString("Загружаем историю...\n")
	} else {
		b.WriteString(m.viewport.View())
		b.WriteString("\n")
	}

	b.WriteString(uiDivider)
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.sending {
		b.WriteString("Ожидаем ответ...\n")
	}
	if m.status != "" {
		b.WriteString("OK: " + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("enter: отправить │ ctrl+y: копировать ответ │ ctrl+d: очистить историю │ ctrl+r: обновить │ ctrl+l: сменить пользователя │ ctrl+c: выход"))

	return appStyle.Render(b.String())
}

func (m chatModel) cmdLoadHistory() tea.Cmd {
	return func() tea.Msg {
		messages, err := m.services.ChatService.History(m.ctx, m.email)
		return historyLoadedMsg{messages: messages, err: err}
	}
}

func (m chatModel) cmdSend(prompt string) tea.Cmd {
	return func() tea.Msg {
		message, err := m.services.ChatService.Send(m.ctx, m.email, prompt)
		return messageSentMsg{message: message, err: err}
	}
}

func (m chatModel) cmdClearHistory() tea.Cmd {
	return func() tea.Msg {
		return historyClearedMsg{err: m.services.ChatService.ClearHistory(m.ctx, m.email)}
	}
}

func (m chatModel) cmdCopyLastResponse() tea.Cmd {
	last := m.messages[len(m.messages)-1]
	return func() tea.Msg {
		if err := clipboard.WriteAll(last.Response); err != nil {
			return clearStatusMsg{}
		}
		return copiedMsg{}
	}
}

func (m chatModel) cmdClearStatusLater() tea.Cmd {
	return tea.Tick(statusDisplayDuration, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
