// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-site-keeper/internal/adapter"
	"github.com/MKhiriev/go-site-keeper/internal/config"
	"github.com/MKhiriev/go-site-keeper/internal/crypto"
	"github.com/MKhiriev/go-site-keeper/internal/editor"
	"github.com/MKhiriev/go-site-keeper/internal/handler"
	"github.com/MKhiriev/go-site-keeper/internal/logger"
	"github.com/MKhiriev/go-site-keeper/internal/notify"
	"github.com/MKhiriev/go-site-keeper/internal/server"
	"github.com/MKhiriev/go-site-keeper/internal/service"
	"github.com/MKhiriev/go-site-keeper/internal/siteconfig"
	"github.com/MKhiriev/go-site-keeper/internal/store"
	"github.com/MKhiriev/go-site-keeper/internal/tui"
	"github.com/MKhiriev/go-site-keeper/models"
)

// App is one initialized sitekeeper runtime.
type App struct {
	cfg       *config.StructuredConfig
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	storages *store.Storages
	codec    crypto.SecretCodec
	services *service.Services
	siteCfg  models.SiteConfig

	recorder *notify.Recorder
	terminal *notify.Terminal
}

// NewApp opens the local state and reads the site config artifact. The
// credential store starts logged out even when a token is cached. Progress
// messages are drawn to out.
func NewApp(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, out io.Writer, logger *logger.Logger) (*App, error) {
	storages, err := store.NewStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create storages: %w", err)
	}

	repo, err := adapter.NewGitHubAdapter(cfg.Adapter, logger)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create repository adapter: %w", err)
	}

	a := &App{
		cfg:       cfg,
		buildInfo: buildInfo,
		logger:    logger,
		storages:  storages,
		codec:     crypto.NewSecretCodec(),
		siteCfg:   loadSiteConfig(ctx, storages.Site, logger),
		recorder:  notify.NewRecorder(notify.DefaultRecorderSize),
		terminal:  notify.NewTerminal(out),
	}

	notifier := notify.Multi(a.recorder, a.terminal, notify.NewLogNotifier(logger))
	a.services = service.NewServices(storages, repo, a.codec, notifier, a.siteCfg, *cfg, logger)

	return a, nil
}

// loadSiteConfig reads the config artifact. A missing or unreadable
// artifact means no shared access has been set up.
func loadSiteConfig(ctx context.Context, site store.SiteFiles, log *logger.Logger) models.SiteConfig {
	data, err := site.ReadConfigArtifact(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrSiteFileNotFound) {
			log.Warn().Err(err).Msg("reading site config artifact")
		}
		return models.SiteConfig{}
	}

	cfg, err := siteconfig.Parse(data)
	if err != nil {
		log.Warn().Err(err).Msg("ignoring malformed site config artifact")
		return models.SiteConfig{}
	}
	return cfg
}

// Services returns the site workflows.
func (a *App) Services() *service.Services {
	return a.services
}

// Codec returns the secret codec.
func (a *App) Codec() crypto.SecretCodec {
	return a.codec
}

// Config returns the effective configuration.
func (a *App) Config() *config.StructuredConfig {
	return a.cfg
}

// LoadPage parses the site page and applies the locally saved changes.
// A corrupt snapshot is reported in the log and leaves the page as read.
func (a *App) LoadPage(ctx context.Context) (*editor.Page, error) {
	raw, err := a.storages.Site.ReadPage(ctx)
	if err != nil {
		return nil, fmt.Errorf("read page: %w", err)
	}
	page, err := editor.ParseBytes(raw)
	if err != nil {
		return nil, err
	}

	restored, err := a.services.Content.Restore(ctx, page)
	switch {
	case errors.Is(err, service.ErrMalformedPersistedState):
		a.logger.Warn().Err(err).Msg("local changes are unreadable, serving the page as published")
	case err != nil:
		return nil, fmt.Errorf("restore local changes: %w", err)
	case restored:
		a.logger.Info().Msg("local changes restored")
	}
	return page, nil
}

// Serve runs the admin server until ctx is cancelled or a stop signal
// arrives.
func (a *App) Serve(ctx context.Context) error {
	page, err := a.LoadPage(ctx)
	if err != nil {
		return err
	}

	handlers, err := handler.NewHandlers(a.services, page, a.recorder, *a.cfg, a.buildInfo, a.logger)
	if err != nil {
		return fmt.Errorf("create handlers: %w", err)
	}
	srv, err := server.NewServer(handlers, a.cfg.Server, a.logger)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	notify.Success(a.terminal, "Serving http://"+a.cfg.Server.HTTPAddress)
	return srv.RunServer(ctx)
}

// Status reports the login and storage state.
func (a *App) Status(ctx context.Context) tui.Status {
	creds := a.services.Credentials
	_, tokenErr := creds.Token(ctx)
	_, shared := creds.SharedRecord()
	_, snapshotErr := a.storages.State.Get(ctx, store.KeyContentSnapshot)

	return tui.Status{
		State:           creds.State(),
		HasToken:        tokenErr == nil,
		HasSharedRecord: shared,
		HasSnapshot:     snapshotErr == nil,
		Repository:      a.cfg.Adapter.Owner + "/" + a.cfg.Adapter.Repo + "@" + a.cfg.Adapter.Branch,
	}
}

// Close stops the terminal notifier and releases the local state.
func (a *App) Close() error {
	a.terminal.Close()
	return a.storages.Close()
}
