// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from APP_*, STORAGE_*, SERVER_* and ADAPTER_*
// variables plus CONFIG for the JSON file path. Unset variables leave
// their fields zero so that later merging keeps the defaults.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse sitekeeper environment: %w", err)
	}
	return nil
}
