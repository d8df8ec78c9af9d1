// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// submitFunc checks an entered password. A non-nil error keeps the prompt
// open and is shown under the inputs.
type submitFunc func(password string) error

type submitResult struct {
	err error
}

// passwordModel is a masked password prompt with an optional confirmation
// field. When submit is set it runs asynchronously on enter and the prompt
// only closes once it succeeds.
type passwordModel struct {
	title  string
	hint   string
	submit submitFunc

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string

	done      bool
	cancelled bool
}

func newPasswordInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 256
	in.Width = 40
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '*'
	return in
}

func newPasswordModel(title, hint string, confirm bool, submit submitFunc) passwordModel {
	inputs := []textinput.Model{newPasswordInput("password")}
	if confirm {
		inputs = append(inputs, newPasswordInput("repeat password"))
	}
	inputs[0].Focus()

	return passwordModel{
		title:  title,
		hint:   hint,
		submit: submit,
		inputs: inputs,
	}
}

func (m passwordModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m passwordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case submitResult:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			m.inputs[0].SetValue("")
			return m, nil
		}
		m.done = true
		return m, tea.Quit

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "tab", "shift+tab", "up", "down":
			m.cycleFocus()
			return m, nil
		case "enter":
			return m.onEnter()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m passwordModel) onEnter() (tea.Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}
	password := m.value()
	if password == "" {
		m.errMsg = "Password must not be empty"
		return m, nil
	}
	if len(m.inputs) > 1 && m.inputs[1].Value() != m.inputs[0].Value() {
		m.errMsg = "Passwords do not match"
		return m, nil
	}

	m.errMsg = ""
	if m.submit == nil {
		m.done = true
		return m, tea.Quit
	}

	m.submitting = true
	submit := m.submit
	return m, func() tea.Msg {
		return submitResult{err: submit(password)}
	}
}

func (m *passwordModel) cycleFocus() {
	if len(m.inputs) < 2 {
		return
	}
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m passwordModel) value() string {
	return strings.TrimSpace(m.inputs[0].Value())
}

func (m passwordModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	var b strings.Builder
	if m.hint != "" {
		b.WriteString(m.hint)
		b.WriteString("\n\n")
	}
	b.WriteString("Password │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	if len(m.inputs) > 1 {
		b.WriteString("Repeat   │ [")
		b.WriteString(m.inputs[1].View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\nChecking...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	keys := "esc: cancel │ enter: confirm"
	if len(m.inputs) > 1 {
		keys = "esc: cancel │ tab: next field │ enter: confirm"
	}
	return renderPage(m.title, strings.TrimRight(b.String(), "\n"), keys)
}
