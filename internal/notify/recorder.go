// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"sync"

	"github.com/MKhiriev/go-site-keeper/models"
)

// DefaultRecorderSize is the number of notifications a [Recorder] keeps
// when constructed with a non-positive size.
const DefaultRecorderSize = 20

// Recorder keeps the most recent notifications in memory, oldest dropped
// first. The admin HTTP surface serves them to the page.
type Recorder struct {
	mu    sync.Mutex
	items []models.Notification
	size  int
}

// NewRecorder returns a Recorder holding at most size notifications.
func NewRecorder(size int) *Recorder {
	if size <= 0 {
		size = DefaultRecorderSize
	}
	return &Recorder{size: size}
}

// Notify implements [Notifier].
func (r *Recorder) Notify(n models.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, n)
	if over := len(r.items) - r.size; over > 0 {
		r.items = append(r.items[:0:0], r.items[over:]...)
	}
}

// Recent returns a copy of the kept notifications, oldest first.
func (r *Recorder) Recent() []models.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Notification, len(r.items))
	copy(out, r.items)
	return out
}

// Last returns the newest notification, if any.
func (r *Recorder) Last() (models.Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.items) == 0 {
		return models.Notification{}, false
	}
	return r.items[len(r.items)-1], true
}
