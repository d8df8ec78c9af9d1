// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for sitekeeper.
// It is populated by merging defaults, environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds admin-session and login settings.
	App App `envPrefix:"APP_"`

	// Storage holds the local state database and the site directory layout.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the admin HTTP server settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the remote repository (GitHub Contents API) settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds login and admin-session settings.
type App struct {
	// LocalPassword is the literal accepted for local-only admin mode when
	// the site has no shared access configured. Empty disables local mode.
	// This path is a local convenience, not a security boundary.
	// Env: APP_LOCAL_PASSWORD
	LocalPassword string `env:"LOCAL_PASSWORD"`

	// TokenSignKey signs admin-session cookies. A random key is generated
	// when empty, so sessions do not survive a restart.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of admin-session tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the admin-session lifetime (e.g. "12h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// LogFile is where CLI runs write their JSON logs. Empty means stderr.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups local persistence settings.
type Storage struct {
	// DB holds the local state database settings.
	DB DB `envPrefix:"DB_"`

	// Site describes the static site checkout being edited.
	Site Site `envPrefix:"SITE_"`
}

// DB holds connection settings for the local state database.
type DB struct {
	// DSN is the SQLite file path or DSN (e.g. "sitekeeper.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Site describes where the site's files live locally and in the repository.
type Site struct {
	// Dir is the local site directory served by the admin server.
	// Env: STORAGE_SITE_DIR
	Dir string `env:"DIR"`

	// PagePath is the page path, relative to Dir and to the repository root.
	// Env: STORAGE_SITE_PAGE_PATH
	PagePath string `env:"PAGE_PATH"`

	// ConfigPath is the config artifact path, relative to Dir and to the
	// repository root.
	// Env: STORAGE_SITE_CONFIG_PATH
	ConfigPath string `env:"CONFIG_PATH"`
}

// Server holds network and timeout settings for the admin HTTP server.
type Server struct {
	// HTTPAddress is the listen address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request, publishes included.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds remote repository settings.
type Adapter struct {
	// BaseURL is the GitHub REST API root.
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Owner is the repository owner (user or organisation).
	// Env: ADAPTER_OWNER
	Owner string `env:"OWNER"`

	// Repo is the repository name.
	// Env: ADAPTER_REPO
	Repo string `env:"REPO"`

	// Branch is the branch every commit targets.
	// Env: ADAPTER_BRANCH
	Branch string `env:"BRANCH"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Defaults returns the built-in configuration layer.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "sitekeeper",
			TokenDuration: 12 * time.Hour,
		},
		Storage: Storage{
			DB: DB{DSN: "sitekeeper.db"},
			Site: Site{
				Dir:        ".",
				PagePath:   "index.html",
				ConfigPath: "js/config.js",
			},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			BaseURL:        "https://api.github.com",
			Owner:          "zuziacz555-hue",
			Repo:           "samorzadydlamlodych",
			Branch:         "master",
			RequestTimeout: 15 * time.Second,
		},
	}
}

// Load loads, merges, and validates the configuration from all sources in
// priority order (last source wins for non-zero fields):
//  1. Defaults
//  2. Environment variables
//  3. Command-line flags (nil flags skips this layer)
//  4. JSON file (path resolved from sources 2 and 3)
func Load(flags *Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(flags).
		withJSON().
		build()
}
