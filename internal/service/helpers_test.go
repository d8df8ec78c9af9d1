package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-site-keeper/internal/editor"
	"github.com/MKhiriev/go-site-keeper/models"
)

const testPage = `<!DOCTYPE html>
<html lang="pl">
<head><title>Samorząd dla Młodych</title></head>
<body>
<nav><ul><li><a href="#" id="adminLoginBtn">Admin</a></li></ul></nav>
<div class="mission-grid"><div class="mission-card"><h3>Misja</h3><p>Działamy lokalnie</p></div></div>
<div class="news-grid"><div class="news-card"><p>Pierwsza wiadomość</p></div></div>
<div class="stats-grid"><div class="stat"><span class="stat-number">120</span></div></div>
</body>
</html>`

func newTestPage(t *testing.T) *editor.Page {
	t.Helper()
	p, err := editor.ParseBytes([]byte(testPage))
	require.NoError(t, err)
	return p
}

func render(t *testing.T, p *editor.Page) string {
	t.Helper()
	out, err := p.Render()
	require.NoError(t, err)
	return string(out)
}

// stubCredentials is a hand-rolled CredentialStore for the publishing
// workflows. Methods not overridden panic through the nil embedded value.
type stubCredentials struct {
	CredentialStore

	token    string
	tokenErr error
	state    models.AuthState
	cleared  bool
	shared   *models.EncryptedSecretRecord
}

func (s *stubCredentials) Token(context.Context) (string, error) {
	if s.tokenErr != nil {
		return "", s.tokenErr
	}
	if s.token == "" {
		return "", ErrNoAccessToken
	}
	return s.token, nil
}

func (s *stubCredentials) ClearToken(context.Context) error {
	s.cleared = true
	s.token = ""
	s.state = models.StateLoggedOut
	return nil
}

func (s *stubCredentials) State() models.AuthState {
	return s.state
}

func (s *stubCredentials) SetSharedRecord(record models.EncryptedSecretRecord) {
	s.shared = &record
}
