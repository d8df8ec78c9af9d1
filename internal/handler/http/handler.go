// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"path/filepath"

	"github.com/MKhiriev/go-site-keeper/internal/config"
	"github.com/MKhiriev/go-site-keeper/internal/editor"
	"github.com/MKhiriev/go-site-keeper/internal/logger"
	"github.com/MKhiriev/go-site-keeper/internal/notify"
	"github.com/MKhiriev/go-site-keeper/internal/service"
	"github.com/MKhiriev/go-site-keeper/internal/utils"
	"github.com/MKhiriev/go-site-keeper/internal/validators"
	"github.com/MKhiriev/go-site-keeper/models"
)

// Handler serves the site and the admin API around one live page.
type Handler struct {
	services      *service.Services
	page          *livePage
	notifications *notify.Recorder
	session       sessionConfig
	buildInfo     models.AppBuildInfo
	validator     validators.Validator
	traceIDs      *utils.UUIDGenerator

	siteDir  string
	pagePath string
	// private holds absolute paths that must never be served even when
	// they live inside the site directory (state DB, config, log).
	private map[string]struct{}

	logger *logger.Logger
}

// NewHandler returns a Handler editing page. Static files are served from
// cfg.Storage.Site.Dir; recent notifications are read from recorder.
func NewHandler(
	services *service.Services,
	page *editor.Page,
	recorder *notify.Recorder,
	cfg config.StructuredConfig,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) *Handler {
	logger.Info().Msg("http handler created")

	private := make(map[string]struct{})
	for _, p := range []string{cfg.Storage.DB.DSN, cfg.JSONFilePath, cfg.App.LogFile} {
		if p == "" {
			continue
		}
		if abs, err := filepath.Abs(p); err == nil {
			private[abs] = struct{}{}
		}
	}

	return &Handler{
		services:      services,
		page:          newLivePage(page),
		notifications: recorder,
		session: sessionConfig{
			signKey:  cfg.App.TokenSignKey,
			issuer:   cfg.App.TokenIssuer,
			duration: cfg.App.TokenDuration,
		},
		buildInfo: buildInfo,
		validator: validators.NewAdminRequestValidator(),
		traceIDs:  utils.NewUUIDGenerator(),
		siteDir:   cfg.Storage.Site.Dir,
		pagePath:  cfg.Storage.Site.PagePath,
		private:   private,
		logger:    logger,
	}
}
