package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-site-keeper/internal/config"
	"github.com/MKhiriev/go-site-keeper/internal/editor"
	"github.com/MKhiriev/go-site-keeper/internal/logger"
	"github.com/MKhiriev/go-site-keeper/internal/notify"
	"github.com/MKhiriev/go-site-keeper/models"
)

func newTestPage(t *testing.T) *editor.Page {
	t.Helper()
	p, err := editor.ParseBytes([]byte(`<html><body><div class="mission-grid"></div></body></html>`))
	require.NoError(t, err)
	return p
}

// NewHandlers only stores the services pointer, so nil is safe here.
func TestNewHandlers_HTTPAddress(t *testing.T) {
	cfg := *config.Defaults()

	h, err := NewHandlers(nil, newTestPage(t), notify.NewRecorder(5), cfg, models.AppBuildInfo{}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
}

func TestNewHandlers_NoAddress(t *testing.T) {
	cfg := *config.Defaults()
	cfg.Server.HTTPAddress = ""

	h, err := NewHandlers(nil, newTestPage(t), notify.NewRecorder(5), cfg, models.AppBuildInfo{}, logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

func TestNewHandlers_IndependentInstances(t *testing.T) {
	cfg := *config.Defaults()

	h1, err1 := NewHandlers(nil, newTestPage(t), notify.NewRecorder(5), cfg, models.AppBuildInfo{}, logger.Nop())
	h2, err2 := NewHandlers(nil, newTestPage(t), notify.NewRecorder(5), cfg, models.AppBuildInfo{}, logger.Nop())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotSame(t, h1.HTTP, h2.HTTP)
}
