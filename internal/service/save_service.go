// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-site-keeper/internal/notify"
	"github.com/MKhiriev/go-site-keeper/models"
)

type saveService struct {
	credentials CredentialStore
	content     ContentService
	publisher   PublishService
	notifier    notify.Notifier
}

// NewSaveService returns the [SaveService] behind the save button.
func NewSaveService(credentials CredentialStore, content ContentService, publisher PublishService, notifier notify.Notifier) SaveService {
	return &saveService{
		credentials: credentials,
		content:     content,
		publisher:   publisher,
		notifier:    notifier,
	}
}

func (s *saveService) SaveChanges(ctx context.Context, page PageEditor) error {
	if !s.credentials.State().IsAdmin() {
		return ErrNotLoggedIn
	}

	if _, err := s.content.Save(ctx, page); err != nil {
		return err
	}

	// a local-only session never publishes, even over a stale cached token
	if s.credentials.State() != models.StateAdminOnline {
		notify.Info(s.notifier, "Saved locally only (no token)")
		return nil
	}

	if _, err := s.credentials.Token(ctx); err != nil {
		if errors.Is(err, ErrNoAccessToken) {
			notify.Info(s.notifier, "Saved locally only (no token)")
			return nil
		}
		return err
	}

	_, err := s.publisher.Publish(ctx, page)
	return err
}
