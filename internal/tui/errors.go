// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-site-keeper/internal/service"
)

// ErrUserQuit is returned when the prompt is closed with esc or ctrl+c.
var ErrUserQuit = errors.New("cancelled by user")

func humanizeError(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, service.ErrInvalidPassword) {
		return "Wrong password"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network is down or the repository is unreachable"
	}

	return err.Error()
}
