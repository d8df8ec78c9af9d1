// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-site-keeper/internal/config"
	"github.com/MKhiriev/go-site-keeper/internal/logger"
)

// Storages groups the local persistence backends so they can be passed to
// the service layer as one value.
type Storages struct {
	// State is the SQLite-backed key/value store.
	State LocalStorage
	// Site gives access to the site checkout.
	Site SiteFiles

	db *DB
}

// NewStorages initialises local persistence:
//  1. Opens the SQLite state database at cfg.DB.DSN, creating the file if
//     it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires the state repository and the site file accessor.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Debug().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		State: NewStateRepository(db, logger),
		Site:  NewSiteFiles(cfg.Site, logger),
		db:    db,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
