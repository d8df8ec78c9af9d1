// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui holds the interactive terminal prompts of the sitekeeper CLI.
package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-site-keeper/internal/logger"
	"github.com/MKhiriev/go-site-keeper/internal/service"
	"github.com/MKhiriev/go-site-keeper/models"
)

// TUI runs Bubble Tea prompts against the site services.
type TUI struct {
	credentials service.CredentialStore
	opts        []tea.ProgramOption
	logger      *logger.Logger
}

// New returns a TUI reading keys from in and drawing to out.
func New(credentials service.CredentialStore, in io.Reader, out io.Writer, logger *logger.Logger) *TUI {
	return &TUI{
		credentials: credentials,
		opts:        []tea.ProgramOption{tea.WithInput(in), tea.WithOutput(out)},
		logger:      logger,
	}
}

// LoginFlow prompts until the password is accepted or the user gives up.
func (t *TUI) LoginFlow(ctx context.Context) (models.AuthState, error) {
	var state models.AuthState
	model := newPasswordModel(
		"ADMIN LOGIN",
		"Enter the password to switch to editing mode.",
		false,
		func(password string) error {
			var err error
			state, err = t.credentials.Login(ctx, password)
			return err
		},
	)

	if err := t.run(ctx, model); err != nil {
		return models.StateLoggedOut, err
	}
	t.logger.Info().Str("state", state.String()).Msg("logged in from terminal")
	return state, nil
}

// PromptPassword asks for a new password twice and returns it trimmed.
func (t *TUI) PromptPassword(ctx context.Context, title, hint string) (string, error) {
	model := newPasswordModel(title, hint, true, nil)
	final, err := t.runModel(ctx, model)
	if err != nil {
		return "", err
	}
	return final.value(), nil
}

func (t *TUI) run(ctx context.Context, model passwordModel) error {
	_, err := t.runModel(ctx, model)
	return err
}

func (t *TUI) runModel(ctx context.Context, model passwordModel) (passwordModel, error) {
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.opts...)
	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		return passwordModel{}, err
	}

	result, ok := final.(passwordModel)
	if !ok {
		return passwordModel{}, tea.ErrProgramKilled
	}
	if result.cancelled || !result.done {
		return passwordModel{}, ErrUserQuit
	}
	return result, nil
}
