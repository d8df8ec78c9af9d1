// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler assembles the transport handlers of the admin server.
package handler

import (
	"github.com/MKhiriev/go-site-keeper/internal/config"
	"github.com/MKhiriev/go-site-keeper/internal/editor"
	"github.com/MKhiriev/go-site-keeper/internal/handler/http"
	"github.com/MKhiriev/go-site-keeper/internal/logger"
	"github.com/MKhiriev/go-site-keeper/internal/notify"
	"github.com/MKhiriev/go-site-keeper/internal/service"
	"github.com/MKhiriev/go-site-keeper/models"
)

// Handlers holds every enabled transport handler.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the handlers enabled by cfg.Server. It fails when no
// listen address is configured.
func NewHandlers(
	services *service.Services,
	page *editor.Page,
	recorder *notify.Recorder,
	cfg config.StructuredConfig,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, page, recorder, cfg, buildInfo, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
