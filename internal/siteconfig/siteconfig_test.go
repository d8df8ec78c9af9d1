// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package siteconfig

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-site-keeper/models"
)

var record = models.EncryptedSecretRecord{
	Cipher: "Y2lwaGVy",
	IV:     "AAECAwQFBgcICQoL",
	Salt:   "1b4e28ba-2fa1-11d2-883f-0016d3cca427",
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    models.SiteConfig
		wantErr error
	}{
		{
			name: "empty file",
			data: "  \n",
		},
		{
			name: "script without SITE_CONFIG",
			data: "console.log('hello');",
		},
		{
			name: "SITE_CONFIG without auth",
			data: "window.SITE_CONFIG = { theme: 'dark' };",
		},
		{
			name: "bare auth key",
			data: `window.SITE_CONFIG = {
    auth: {
        "cipher": "Y2lwaGVy",
        "iv": "AAECAwQFBgcICQoL",
        "salt": "1b4e28ba-2fa1-11d2-883f-0016d3cca427"
    }
};`,
			want: models.SiteConfig{Auth: &record},
		},
		{
			name: "quoted auth key",
			data: `window.SITE_CONFIG = {"auth": {"cipher":"Y2lwaGVy","iv":"AAECAwQFBgcICQoL","salt":"1b4e28ba-2fa1-11d2-883f-0016d3cca427"}};`,
			want: models.SiteConfig{Auth: &record},
		},
		{
			name: "plain JSON object",
			data: `{"auth":{"cipher":"Y2lwaGVy","iv":"AAECAwQFBgcICQoL","salt":"1b4e28ba-2fa1-11d2-883f-0016d3cca427"}}`,
			want: models.SiteConfig{Auth: &record},
		},
		{
			name: "null auth",
			data: `window.SITE_CONFIG = { auth: null };`,
		},
		{
			name:    "truncated auth",
			data:    `window.SITE_CONFIG = { auth: { "cipher": "Y2lw`,
			wantErr: ErrMalformedConfig,
		},
		{
			name:    "auth missing salt",
			data:    `window.SITE_CONFIG = { auth: {"cipher":"Y2lwaGVy","iv":"AAECAwQFBgcICQoL"} };`,
			wantErr: ErrMalformedConfig,
		},
		{
			name:    "broken JSON object",
			data:    `{"auth": [}`,
			wantErr: ErrMalformedConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.data))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRender_ParsesBack(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 26, 53, 0, time.Local)

	data := Render(models.SiteConfig{Auth: &record}, now)

	assert.Contains(t, string(data), "Last Updated: 2026-03-14 09:26:53")
	assert.Contains(t, string(data), "window.SITE_CONFIG = {")

	cfg, err := Parse(data)
	require.NoError(t, err)
	require.True(t, cfg.HasSharedSecret())
	assert.Equal(t, record, *cfg.Auth)
}

func TestRender_NoAuth(t *testing.T) {
	data := Render(models.SiteConfig{}, time.Now())

	cfg, err := Parse(data)
	require.NoError(t, err)
	assert.False(t, cfg.HasSharedSecret())
}
