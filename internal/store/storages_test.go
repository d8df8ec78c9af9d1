// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-site-keeper/internal/config"
	"github.com/MKhiriev/go-site-keeper/internal/logger"
)

func TestNewStorages_SQLiteRoundTrip(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := NewStorages(ctx, config.Storage{
		DB:   config.DB{DSN: filepath.Join(dir, "state", "sitekeeper.db")},
		Site: config.Site{Dir: dir, PagePath: "index.html", ConfigPath: "js/config.js"},
	}, logger.NewLogger("test"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	_, err = s.State.Get(ctx, KeyAccessToken)
	require.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, s.State.Set(ctx, KeyAccessToken, "one"))
	require.NoError(t, s.State.Set(ctx, KeyAccessToken, "two"))

	v, err := s.State.Get(ctx, KeyAccessToken)
	require.NoError(t, err)
	assert.Equal(t, "two", v)

	require.NoError(t, s.State.Delete(ctx, KeyAccessToken))
	require.NoError(t, s.State.Delete(ctx, KeyAccessToken))

	_, err = s.State.Get(ctx, KeyAccessToken)
	require.ErrorIs(t, err, ErrKeyNotFound)
}
