// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"sync"

	"github.com/MKhiriev/go-site-keeper/internal/editor"
)

// livePage guards the page being edited. Requests mutate it under the lock;
// rendering and publishing work on clones taken under the lock.
type livePage struct {
	mu   sync.Mutex
	page *editor.Page
}

func newLivePage(page *editor.Page) *livePage {
	return &livePage{page: page}
}

func (l *livePage) edit(fn func(p *editor.Page) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return fn(l.page)
}

func (l *livePage) clone() *editor.Page {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.page.Clone()
}
