// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-site-keeper/internal/logger"
	"github.com/MKhiriev/go-site-keeper/internal/notify"
	"github.com/MKhiriev/go-site-keeper/internal/store"
	"github.com/MKhiriev/go-site-keeper/models"
)

const msgSavedLocally = "Changes saved locally"

type contentService struct {
	storage  store.LocalStorage
	notifier notify.Notifier
	logger   *logger.Logger
}

// NewContentService returns a [ContentService] that keeps the snapshot in
// storage under [store.KeyContentSnapshot].
func NewContentService(storage store.LocalStorage, notifier notify.Notifier, logger *logger.Logger) ContentService {
	return &contentService{
		storage:  storage,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *contentService) Capture(page PageEditor) (models.ContentSnapshot, error) {
	doc, err := page.Capture()
	if err != nil {
		return models.ContentSnapshot{}, fmt.Errorf("capture page: %w", err)
	}
	return models.ContentSnapshot{Document: doc}, nil
}

func (s *contentService) PersistLocally(ctx context.Context, snapshot models.ContentSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err = s.storage.Set(ctx, store.KeyContentSnapshot, string(data)); err != nil {
		return fmt.Errorf("persist snapshot: %w", err)
	}
	return nil
}

func (s *contentService) Save(ctx context.Context, page PageEditor) (models.ContentSnapshot, error) {
	snapshot, err := s.Capture(page)
	if err != nil {
		notify.Error(s.notifier, "Save failed: "+err.Error())
		return models.ContentSnapshot{}, err
	}
	if err = s.PersistLocally(ctx, snapshot); err != nil {
		notify.Error(s.notifier, "Save failed: "+err.Error())
		return models.ContentSnapshot{}, err
	}
	notify.Success(s.notifier, msgSavedLocally)
	return snapshot, nil
}

func (s *contentService) Restore(ctx context.Context, page PageEditor) (bool, error) {
	raw, err := s.storage.Get(ctx, store.KeyContentSnapshot)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("read snapshot: %w", err)
	}

	var snapshot models.ContentSnapshot
	if err = json.Unmarshal([]byte(raw), &snapshot); err != nil {
		s.logger.Err(err).Str("func", "*contentService.Restore").Msg("saved content is malformed, ignoring it")
		return false, fmt.Errorf("%w: %w", ErrMalformedPersistedState, err)
	}

	if err = page.Apply(snapshot.Document); err != nil {
		s.logger.Err(err).Str("func", "*contentService.Restore").Msg("saved content could not be applied")
		return false, fmt.Errorf("%w: %w", ErrMalformedPersistedState, err)
	}
	return true, nil
}
