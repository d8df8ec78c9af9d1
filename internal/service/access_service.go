// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-site-keeper/internal/crypto"
	"github.com/MKhiriev/go-site-keeper/internal/logger"
	"github.com/MKhiriev/go-site-keeper/internal/notify"
	"github.com/MKhiriev/go-site-keeper/internal/siteconfig"
	"github.com/MKhiriev/go-site-keeper/internal/store"
	"github.com/MKhiriev/go-site-keeper/models"
)

// ShareAccessCommitMessage is the commit message of the config artifact.
const ShareAccessCommitMessage = "Setup Global Admin Access"

type accessService struct {
	codec       crypto.SecretCodec
	credentials CredentialStore
	publisher   PublishService
	site        store.SiteFiles
	notifier    notify.Notifier

	configPath string
	now        func() time.Time

	logger *logger.Logger
}

// NewAccessService returns an [AccessService] publishing the artifact to
// configPath, both remotely and in the local site directory.
func NewAccessService(codec crypto.SecretCodec, credentials CredentialStore, publisher PublishService, site store.SiteFiles, notifier notify.Notifier, configPath string, logger *logger.Logger) AccessService {
	return &accessService{
		codec:       codec,
		credentials: credentials,
		publisher:   publisher,
		site:        site,
		notifier:    notifier,
		configPath:  configPath,
		now:         time.Now,
		logger:      logger,
	}
}

func (s *accessService) ShareAccess(ctx context.Context, password string) (models.EncryptedSecretRecord, error) {
	token, err := s.credentials.Token(ctx)
	if err != nil {
		notify.Error(s.notifier, "No session token!")
		return models.EncryptedSecretRecord{}, err
	}
	if password == "" {
		return models.EncryptedSecretRecord{}, crypto.ErrEmptyPassword
	}

	notify.Info(s.notifier, "Encrypting...")

	record, err := s.codec.Encrypt(token, password)
	if err != nil {
		notify.Error(s.notifier, "Encryption failed: "+err.Error())
		return models.EncryptedSecretRecord{}, fmt.Errorf("encrypt access token: %w", err)
	}

	artifact := siteconfig.Render(models.SiteConfig{Auth: &record}, s.now())

	if _, err = s.publisher.PublishAuxiliaryFile(ctx, s.configPath, artifact, ShareAccessCommitMessage); err != nil {
		notify.Error(s.notifier, "Saving configuration failed: "+err.Error())
		return models.EncryptedSecretRecord{}, fmt.Errorf("publish config: %w", err)
	}

	s.credentials.SetSharedRecord(record)

	if err = s.site.WriteConfigArtifact(ctx, artifact); err != nil {
		s.logger.Err(err).Str("func", "*accessService.ShareAccess").Msg("config published but local copy not written")
		notify.Error(s.notifier, "Configuration published, but the local copy could not be written: "+err.Error())
		return record, fmt.Errorf("write local config: %w", err)
	}

	notify.Success(s.notifier, "Done! You can now log in with this password everywhere.")
	return record, nil
}
