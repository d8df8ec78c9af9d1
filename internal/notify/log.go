// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-site-keeper/internal/logger"
	"github.com/MKhiriev/go-site-keeper/models"
)

type logNotifier struct {
	logger *logger.Logger
}

// NewLogNotifier returns a [Notifier] that records every notification in
// the structured log. Errors are logged at warn level.
func NewLogNotifier(log *logger.Logger) Notifier {
	return &logNotifier{logger: log}
}

func (l *logNotifier) Notify(n models.Notification) {
	level := zerolog.InfoLevel
	if n.Severity == models.SeverityError {
		level = zerolog.WarnLevel
	}
	l.logger.WithLevel(level).
		Str("severity", string(n.Severity)).
		Time("at", n.At).
		Msg(n.Message)
}
