// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package notify delivers short, transient user notifications (the admin
// "toast") to wherever the current front end can show them: the terminal,
// the log, or an in-memory buffer polled by the admin page.
package notify

import (
	"time"

	"github.com/MKhiriev/go-site-keeper/models"
)

//go:generate mockgen -source=notify.go -destination=../mock/notifier_mock.go -package=mock

// Notifier shows a notification. Implementations must not block for long
// and must be safe for concurrent use.
type Notifier interface {
	Notify(n models.Notification)
}

// now is replaced in tests.
var now = time.Now

// Success sends a success notification through n.
func Success(n Notifier, message string) {
	send(n, models.SeveritySuccess, message)
}

// Info sends an informational notification through n.
func Info(n Notifier, message string) {
	send(n, models.SeverityInfo, message)
}

// Error sends an error notification through n.
func Error(n Notifier, message string) {
	send(n, models.SeverityError, message)
}

func send(n Notifier, severity models.Severity, message string) {
	if n == nil {
		return
	}
	n.Notify(models.Notification{Severity: severity, Message: message, At: now()})
}

// multi fans a notification out to several notifiers in order.
type multi []Notifier

// Multi combines notifiers. Nil entries are skipped.
func Multi(notifiers ...Notifier) Notifier {
	m := make(multi, 0, len(notifiers))
	for _, n := range notifiers {
		if n != nil {
			m = append(m, n)
		}
	}
	return m
}

func (m multi) Notify(n models.Notification) {
	for _, notifier := range m {
		notifier.Notify(n)
	}
}
