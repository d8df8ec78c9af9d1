// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"path"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return fmt.Errorf("%w: database dsn must point to a file", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.Site.Dir == "" {
		return fmt.Errorf("%w: empty site dir", ErrInvalidStorageConfigs)
	}
	for _, p := range []string{cfg.Storage.Site.PagePath, cfg.Storage.Site.ConfigPath} {
		if !isRepoPath(p) {
			return fmt.Errorf("%w: %q must be a relative path inside the site", ErrInvalidStorageConfigs, p)
		}
	}

	if cfg.Adapter.BaseURL == "" || cfg.Adapter.Owner == "" || cfg.Adapter.Repo == "" ||
		cfg.Adapter.Branch == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 || cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

// isRepoPath reports whether p is a clean, relative, slash-separated path
// that stays inside its root.
func isRepoPath(p string) bool {
	if p == "" || strings.HasPrefix(p, "/") || strings.Contains(p, `\`) {
		return false
	}
	clean := path.Clean(p)
	return clean == p && clean != "." && clean != ".." && !strings.HasPrefix(clean, "../")
}
