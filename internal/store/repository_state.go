// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-site-keeper/internal/logger"
)

// stateRepository is the SQLite-backed implementation of [LocalStorage].
// Values live in the "kv_state" table, one row per key.
type stateRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewStateRepository constructs a [LocalStorage] backed by db.
func NewStateRepository(db *DB, logger *logger.Logger) LocalStorage {
	logger.Debug().Msg("creating state repository")
	return &stateRepository{
		db:     db,
		logger: logger,
	}
}

// Get implements [LocalStorage].
func (r *stateRepository) Get(ctx context.Context, key string) (string, error) {
	query, args, err := buildGetStateQuery(key)
	if err != nil {
		return "", fmt.Errorf("build get query: %w", err)
	}

	var value string
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrKeyNotFound
		}
		r.logger.Err(err).Str("func", "*stateRepository.Get").Str("key", key).Msg("error reading state")
		return "", fmt.Errorf("unexpected DB error: %w", err)
	}

	return value, nil
}

// Set implements [LocalStorage].
func (r *stateRepository) Set(ctx context.Context, key, value string) error {
	query, args, err := buildSetStateQuery(key, value)
	if err != nil {
		return fmt.Errorf("build set query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "*stateRepository.Set").Str("key", key).Msg("error writing state")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// Delete implements [LocalStorage].
func (r *stateRepository) Delete(ctx context.Context, key string) error {
	query, args, err := buildDeleteStateQuery(key)
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "*stateRepository.Delete").Str("key", key).Msg("error deleting state")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}
