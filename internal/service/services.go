// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-site-keeper/internal/adapter"
	"github.com/MKhiriev/go-site-keeper/internal/config"
	"github.com/MKhiriev/go-site-keeper/internal/crypto"
	"github.com/MKhiriev/go-site-keeper/internal/logger"
	"github.com/MKhiriev/go-site-keeper/internal/notify"
	"github.com/MKhiriev/go-site-keeper/internal/store"
	"github.com/MKhiriev/go-site-keeper/models"
)

// Services bundles every workflow, built once and shared by the HTTP
// surface and the CLI.
type Services struct {
	Credentials CredentialStore
	Content     ContentService
	Publish     PublishService
	Access      AccessService
	Save        SaveService
}

// NewServices wires the workflows over the given storages, repository
// adapter and notifier. siteCfg is the config artifact read at startup.
func NewServices(
	storages *store.Storages,
	repo adapter.RepositoryAdapter,
	codec crypto.SecretCodec,
	notifier notify.Notifier,
	siteCfg models.SiteConfig,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) *Services {
	credentials := NewCredentialStore(storages.State, codec, siteCfg, cfg.App.LocalPassword, logger)
	content := NewContentService(storages.State, notifier, logger)
	publisher := NewPublishService(repo, credentials, notifier, cfg.Storage.Site.PagePath, cfg.Adapter.Branch, logger)

	return &Services{
		Credentials: credentials,
		Content:     content,
		Publish:     publisher,
		Access:      NewAccessService(codec, credentials, publisher, storages.Site, notifier, cfg.Storage.Site.ConfigPath, logger),
		Save:        NewSaveService(credentials, content, publisher, notifier),
	}
}
