// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-site-keeper/internal/config"
	"github.com/MKhiriev/go-site-keeper/internal/logger"
)

// siteFiles is the filesystem implementation of [SiteFiles].
type siteFiles struct {
	dir        string
	pagePath   string
	configPath string

	logger *logger.Logger
}

// NewSiteFiles constructs [SiteFiles] rooted at cfg.Dir. Paths in cfg are
// repository-relative and slash separated.
func NewSiteFiles(cfg config.Site, logger *logger.Logger) SiteFiles {
	return &siteFiles{
		dir:        cfg.Dir,
		pagePath:   cfg.PagePath,
		configPath: cfg.ConfigPath,
		logger:     logger,
	}
}

// Dir implements [SiteFiles].
func (s *siteFiles) Dir() string {
	return s.dir
}

// ReadPage implements [SiteFiles].
func (s *siteFiles) ReadPage(ctx context.Context) ([]byte, error) {
	return s.read(ctx, s.pagePath)
}

// ReadConfigArtifact implements [SiteFiles].
func (s *siteFiles) ReadConfigArtifact(ctx context.Context) ([]byte, error) {
	return s.read(ctx, s.configPath)
}

// WriteConfigArtifact implements [SiteFiles]. The data is written to a
// temporary file in the target directory and renamed into place.
func (s *siteFiles) WriteConfigArtifact(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	target := s.resolve(s.configPath)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), ".config-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp config: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp config: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp config: %w", err)
	}
	// site files are public; match the usual 0644 of a checkout
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod temp config: %w", err)
	}
	if err = os.Rename(tmp.Name(), target); err != nil {
		return fmt.Errorf("replace config: %w", err)
	}

	s.logger.Debug().Str("path", s.configPath).Msg("config artifact written")
	return nil
}

func (s *siteFiles) read(ctx context.Context, rel string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.resolve(rel))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSiteFileNotFound, rel)
		}
		return nil, fmt.Errorf("read %s: %w", rel, err)
	}
	return data, nil
}

func (s *siteFiles) resolve(rel string) string {
	return filepath.Join(s.dir, filepath.FromSlash(rel))
}
