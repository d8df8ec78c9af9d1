// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-site-keeper/internal/adapter"
	"github.com/MKhiriev/go-site-keeper/internal/logger"
	"github.com/MKhiriev/go-site-keeper/internal/notify"
	"github.com/MKhiriev/go-site-keeper/models"
)

type publishService struct {
	adapter     adapter.RepositoryAdapter
	credentials CredentialStore
	notifier    notify.Notifier

	pagePath string
	branch   string
	now      func() time.Time

	logger *logger.Logger
}

// NewPublishService returns a [PublishService] that commits the page to
// pagePath on branch. An empty branch leaves the choice to the adapter.
func NewPublishService(repo adapter.RepositoryAdapter, credentials CredentialStore, notifier notify.Notifier, pagePath, branch string, logger *logger.Logger) PublishService {
	return &publishService{
		adapter:     repo,
		credentials: credentials,
		notifier:    notifier,
		pagePath:    pagePath,
		branch:      branch,
		now:         time.Now,
		logger:      logger,
	}
}

// Publish reads the current revision of the page, then overwrites it with
// the sanitized page. There is no locking across calls: two concurrent
// publishes may both read the same revision, and the second commit is then
// rejected by the repository as a conflict.
func (s *publishService) Publish(ctx context.Context, page PageEditor) (models.RemoteFileRevision, error) {
	token, err := s.credentials.Token(ctx)
	if err != nil {
		notify.Error(s.notifier, "Publish failed: "+err.Error())
		return models.RemoteFileRevision{}, err
	}

	notify.Info(s.notifier, "Preparing...")

	current, err := s.currentRevision(ctx, token, s.pagePath)
	if err != nil {
		return models.RemoteFileRevision{}, s.fail(ctx, err)
	}

	content, err := page.Sanitized()
	if err != nil {
		err = fmt.Errorf("render page: %w", err)
		notify.Error(s.notifier, "Publish failed: "+err.Error())
		return models.RemoteFileRevision{}, err
	}

	notify.Info(s.notifier, "Uploading page...")

	rev, err := s.adapter.PutFile(ctx, token, models.FileCommit{
		Path:       s.pagePath,
		Content:    content,
		Message:    fmt.Sprintf("Update site content (%s)", s.now().Local().Format(time.DateTime)),
		Branch:     s.branch,
		RevisionID: current.RevisionID,
	})
	if err != nil {
		return models.RemoteFileRevision{}, s.fail(ctx, err)
	}

	s.logger.Info().Str("path", s.pagePath).Str("revision", rev.RevisionID).Msg("page published")
	notify.Success(s.notifier, "Success! The site has been updated.")
	return rev, nil
}

func (s *publishService) PublishAuxiliaryFile(ctx context.Context, path string, content []byte, message string) (models.RemoteFileRevision, error) {
	token, err := s.credentials.Token(ctx)
	if err != nil {
		return models.RemoteFileRevision{}, err
	}

	current, err := s.currentRevision(ctx, token, path)
	if err != nil {
		return models.RemoteFileRevision{}, s.revokeIfUnauthorized(ctx, err)
	}

	if message == "" {
		message = "Update " + path
	}
	rev, err := s.adapter.PutFile(ctx, token, models.FileCommit{
		Path:       path,
		Content:    content,
		Message:    message,
		Branch:     s.branch,
		RevisionID: current.RevisionID,
	})
	if err != nil {
		return models.RemoteFileRevision{}, s.revokeIfUnauthorized(ctx, err)
	}

	s.logger.Info().Str("path", path).Str("revision", rev.RevisionID).Msg("file published")
	return rev, nil
}

// currentRevision returns the remote revision of path. A missing file is
// not an error: the zero revision makes the commit create it.
func (s *publishService) currentRevision(ctx context.Context, token, path string) (models.RemoteFileRevision, error) {
	rev, err := s.adapter.GetFile(ctx, token, path)
	if err != nil {
		if errors.Is(err, adapter.ErrNotFound) {
			return models.RemoteFileRevision{Path: path}, nil
		}
		return models.RemoteFileRevision{}, fmt.Errorf("read revision of %s: %w", path, err)
	}
	return rev, nil
}

func (s *publishService) fail(ctx context.Context, err error) error {
	err = s.revokeIfUnauthorized(ctx, err)
	notify.Error(s.notifier, "Publish failed: "+err.Error())
	return err
}

// revokeIfUnauthorized drops the token when the repository rejected it.
func (s *publishService) revokeIfUnauthorized(ctx context.Context, err error) error {
	if !errors.Is(err, adapter.ErrUnauthorized) {
		return err
	}
	if clearErr := s.credentials.ClearToken(ctx); clearErr != nil {
		s.logger.Err(clearErr).Str("func", "*publishService.revokeIfUnauthorized").Msg("error discarding rejected token")
	}
	return err
}
