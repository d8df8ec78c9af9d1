package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-site-keeper/internal/app"
	"github.com/MKhiriev/go-site-keeper/internal/crypto"
	"github.com/MKhiriev/go-site-keeper/internal/service"
	"github.com/MKhiriev/go-site-keeper/models"
)

const testPage = `<!DOCTYPE html><html><body>
<a id="adminLoginBtn" href="#">Admin</a>
<div class="mission-grid"><div class="mission-card"><p>Misja</p></div></div>
</body></html>`

type testSite struct {
	dir string
	db  string
	log string
}

func newTestSite(t *testing.T) testSite {
	t.Helper()
	root := t.TempDir()
	site := testSite{
		dir: filepath.Join(root, "site"),
		db:  filepath.Join(root, "state", "sitekeeper.db"),
		log: filepath.Join(root, "sitekeeper.log"),
	}
	require.NoError(t, os.MkdirAll(site.dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(site.dir, "index.html"), []byte(testPage), 0o644))
	return site
}

// run executes one command line against a fresh command tree.
func (s testSite) run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand(models.NewAppBuildInfo("1.0.0", "2026-10-01", "cafe"))

	var out bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(args,
		"--db", s.db,
		"--site-dir", s.dir,
		"--log-file", s.log,
		"--local-password", "admin",
	))

	err := root.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := newTestSite(t).run(t, "", "version")

	require.NoError(t, err)
	assert.Contains(t, out, "1.0.0")
	assert.Contains(t, out, "cafe")
}

func TestLogin_LocalPassword(t *testing.T) {
	out, err := newTestSite(t).run(t, "admin\n", "login")

	require.NoError(t, err)
	assert.Contains(t, out, app.MsgLoggedInLocal)
}

func TestLogin_WrongPassword(t *testing.T) {
	_, err := newTestSite(t).run(t, "haslo\n", "login")

	assert.ErrorIs(t, err, service.ErrInvalidPassword)
}

func TestLogin_NoInput(t *testing.T) {
	_, err := newTestSite(t).run(t, "", "login")

	assert.ErrorIs(t, err, errNoInput)
}

func TestStatusAndLogout(t *testing.T) {
	site := newTestSite(t)

	out, err := site.run(t, "", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "logged_out")
	assert.Contains(t, out, "zuziacz555-hue/samorzadydlamlodych@master")

	out, err = site.run(t, "", "logout")
	require.NoError(t, err)
	assert.Contains(t, out, app.MsgLoggedOut)
}

func TestPublish_WithoutToken(t *testing.T) {
	_, err := newTestSite(t).run(t, "", "publish")

	require.Error(t, err)
	assert.Equal(t, app.MsgNotLoggedIn, err.Error())
}

func TestShareAccess_WithoutToken(t *testing.T) {
	_, err := newTestSite(t).run(t, "nowe\n", "share-access")

	require.Error(t, err)
	assert.Equal(t, app.MsgNotLoggedIn, err.Error())
}

func TestEncryptDecrypt(t *testing.T) {
	site := newTestSite(t)

	out, err := site.run(t, "ghp_secret\nwspolne\n", "encrypt")
	require.NoError(t, err)

	var record models.EncryptedSecretRecord
	require.NoError(t, json.Unmarshal([]byte(out), &record))
	assert.False(t, record.IsZero())

	file := filepath.Join(t.TempDir(), "record.json")
	require.NoError(t, os.WriteFile(file, []byte(out), 0o600))

	out, err = site.run(t, "wspolne\n", "decrypt", file)
	require.NoError(t, err)
	assert.Equal(t, "ghp_secret\n", out)

	_, err = site.run(t, "zle\n", "decrypt", file)
	assert.ErrorIs(t, err, crypto.ErrAuthenticationFailure)
}

func TestEncrypt_SecretAsArgument(t *testing.T) {
	site := newTestSite(t)

	out, err := site.run(t, "wspolne\n", "encrypt", "ghp_arg")
	require.NoError(t, err)

	var record models.EncryptedSecretRecord
	require.NoError(t, json.Unmarshal([]byte(out), &record))
	secret, err := crypto.NewSecretCodec().Decrypt(record, "wspolne")
	require.NoError(t, err)
	assert.Equal(t, "ghp_arg", secret)
}

func TestDecrypt_FromSiteConfig(t *testing.T) {
	site := newTestSite(t)

	_, err := site.run(t, "x\n", "decrypt")
	require.Error(t, err)
	assert.Equal(t, app.MsgNoSharedRecord, err.Error())

	record, err := crypto.NewSecretCodec().Encrypt("ghp_site", "wspolne")
	require.NoError(t, err)
	raw, err := json.Marshal(record)
	require.NoError(t, err)
	artifact := "window.SITE_CONFIG = {\n    auth: " + string(raw) + "\n};\n"
	require.NoError(t, os.MkdirAll(filepath.Join(site.dir, "js"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(site.dir, "js", "config.js"), []byte(artifact), 0o644))

	out, err := site.run(t, "wspolne\n", "decrypt")
	require.NoError(t, err)
	assert.Equal(t, "ghp_site\n", out)

	// the shared record now takes precedence over the local password
	_, err = site.run(t, "admin\n", "login")
	assert.ErrorIs(t, err, service.ErrInvalidPassword)
}
