// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for the remote repository
// that hosts the site.
//
// The abstraction is [RepositoryAdapter], which decouples the publish
// workflow from the GitHub Contents REST API. The access token is passed on
// every call and never stored by the adapter.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-site-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/repository_adapter_mock.go -package=mock

// RepositoryAdapter reads and conditionally overwrites single files in the
// remote repository.
type RepositoryAdapter interface {
	// GetFile returns the current revision of path on the configured
	// branch. A missing file yields [ErrNotFound].
	GetFile(ctx context.Context, token, path string) (models.RemoteFileRevision, error)

	// PutFile commits commit.Content to commit.Path. commit.RevisionID must
	// be the revision observed by GetFile, or empty to create the file. An
	// empty commit.Branch targets the configured branch. Returns the new
	// revision.
	PutFile(ctx context.Context, token string, commit models.FileCommit) (models.RemoteFileRevision, error)
}
