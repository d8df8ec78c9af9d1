// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-site-keeper/models"
)

// Status is the state shown by the status command.
type Status struct {
	State           models.AuthState
	HasToken        bool
	HasSharedRecord bool
	HasSnapshot     bool
	Repository      string
}

// RenderStatus formats s for the terminal.
func RenderStatus(s Status) string {
	var b strings.Builder
	b.WriteString("Mode:            ")
	b.WriteString(s.State.String())
	b.WriteString("\nAccess token:    ")
	b.WriteString(yesNo(s.HasToken))
	b.WriteString("\nShared access:   ")
	b.WriteString(yesNo(s.HasSharedRecord))
	b.WriteString("\nLocal changes:   ")
	b.WriteString(yesNo(s.HasSnapshot))
	b.WriteString("\nRepository:      ")
	b.WriteString(valueOrNA(s.Repository))

	return renderPage("SITE ADMIN STATUS", b.String(), "")
}

// RenderBuildInfo formats the build metadata.
func RenderBuildInfo(info models.AppBuildInfo) string {
	var b strings.Builder
	b.WriteString("Application: sitekeeper\n")
	b.WriteString("Version:     ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\nDate:        ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\nCommit:      ")
	b.WriteString(valueOrNA(info.BuildCommit()))

	return renderPage("ABOUT", b.String(), "")
}
