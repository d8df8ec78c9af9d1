// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-site-keeper/internal/client"
	"github.com/MKhiriev/go-site-keeper/internal/config"
	"github.com/MKhiriev/go-site-keeper/internal/logger"
	"github.com/MKhiriev/go-site-keeper/models"
)

// runtime lazily builds what a command needs and releases it after the
// command finished.
type runtime struct {
	flags     *config.Flags
	buildInfo models.AppBuildInfo

	cfg      *config.StructuredConfig
	logger   *logger.Logger
	logClose func() error
	app      *client.App
}

func (r *runtime) config() (*config.StructuredConfig, error) {
	if r.cfg != nil {
		return r.cfg, nil
	}
	cfg, err := config.Load(r.flags)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	r.cfg = cfg
	return cfg, nil
}

func (r *runtime) log(role string) (*logger.Logger, error) {
	if r.logger != nil {
		return r.logger, nil
	}
	cfg, err := r.config()
	if err != nil {
		return nil, err
	}
	r.logger, r.logClose = logger.NewClientLogger(role, cfg.App.LogFile)
	return r.logger, nil
}

func (r *runtime) open(cmd *cobra.Command) (*client.App, error) {
	if r.app != nil {
		return r.app, nil
	}
	log, err := r.log(cmd.Name())
	if err != nil {
		return nil, err
	}

	app, err := client.NewApp(cmd.Context(), r.cfg, r.buildInfo, cmd.OutOrStdout(), log)
	if err != nil {
		return nil, err
	}
	r.app = app
	return app, nil
}

func (r *runtime) close() error {
	var errs []error
	if r.app != nil {
		errs = append(errs, r.app.Close())
		r.app = nil
	}
	if r.logClose != nil {
		errs = append(errs, r.logClose())
		r.logClose = nil
	}
	return errors.Join(errs...)
}
