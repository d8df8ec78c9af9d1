// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements local persistence for sitekeeper: a small
// key/value state store on SQLite (the cached access token and the saved
// content snapshot) and access to the files of the site checkout.
package store

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Well-known state keys. The names match the browser's localStorage keys so
// that exported state stays interchangeable.
const (
	KeyAccessToken     = "githubToken"
	KeyContentSnapshot = "adminContent"
)

// LocalStorage is a string-keyed, string-valued persistent store. Writes
// overwrite; there is no history.
type LocalStorage interface {
	// Get returns the value under key, or [ErrKeyNotFound].
	Get(ctx context.Context, key string) (string, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// SiteFiles reads and writes files of the local site checkout.
type SiteFiles interface {
	// ReadPage returns the raw HTML page.
	ReadPage(ctx context.Context) ([]byte, error)
	// ReadConfigArtifact returns the raw config artifact, or
	// [ErrSiteFileNotFound] when the site has none yet.
	ReadConfigArtifact(ctx context.Context) ([]byte, error)
	// WriteConfigArtifact replaces the config artifact atomically.
	WriteConfigArtifact(ctx context.Context, data []byte) error
	// Dir returns the site root directory.
	Dir() string
}
