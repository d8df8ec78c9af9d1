// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-site-keeper/models"
)

var (
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
)

// Terminal prints notifications to a terminal. An info notification starts
// a spinner that keeps running until the next notification replaces it,
// the way a toast is replaced on the page.
type Terminal struct {
	mu      sync.Mutex
	out     io.Writer
	spinner *spinner.Spinner
}

// NewTerminal returns a Terminal writing to out.
func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{out: out}
}

// Notify implements [Notifier].
func (t *Terminal) Notify(n models.Notification) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()

	switch n.Severity {
	case models.SeverityInfo:
		s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(t.out))
		s.Suffix = " " + n.Message
		s.FinalMSG = infoStyle.Render("→") + " " + n.Message + "\n"
		t.spinner = s
		// spinner stays idle when out is not a terminal
		s.Start()
		if !s.Active() {
			fmt.Fprint(t.out, s.FinalMSG)
			t.spinner = nil
		}
	case models.SeveritySuccess:
		fmt.Fprintln(t.out, successStyle.Render("✓")+" "+n.Message)
	default:
		fmt.Fprintln(t.out, errorStyle.Render("✗")+" "+n.Message)
	}
}

// Close stops a running spinner.
func (t *Terminal) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
}

func (t *Terminal) stopLocked() {
	if t.spinner == nil {
		return
	}
	t.spinner.Stop()
	t.spinner = nil
}
