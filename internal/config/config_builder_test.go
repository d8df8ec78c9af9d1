package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── build ─────────────────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{Branch: "main"}},
		&StructuredConfig{Adapter: Adapter{Owner: "someone"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "main", cfg.Adapter.Branch)
	assert.Equal(t, "someone", cfg.Adapter.Owner)
	assert.Equal(t, "samorzadydlamlodych", cfg.Adapter.Repo, "zero values must not override defaults")
}

func TestBuild_GeneratesTokenSignKey(t *testing.T) {
	cfg1, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)
	cfg2, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Len(t, cfg1.App.TokenSignKey, 64)
	assert.NotEqual(t, cfg1.App.TokenSignKey, cfg2.App.TokenSignKey)
}

func TestBuild_KeepsConfiguredTokenSignKey(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{App: App{TokenSignKey: "fixed"}})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "fixed", cfg.App.TokenSignKey)
}

// ── Load ──────────────────────────────────────────────────────────────────────

func TestLoad_PriorityEnvFlagsJSON(t *testing.T) {
	clearEnvVars(t)

	jsonPath := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"adapter": {"repo": "from-json"}}`), 0o600))

	setEnvVars(t, map[string]string{
		"ADAPTER_REPO":   "from-env",
		"ADAPTER_OWNER":  "env-owner",
		"ADAPTER_BRANCH": "env-branch",
		"CONFIG":         jsonPath,
	})

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags := RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--branch", "flag-branch", "--api-timeout", "3s"}))

	cfg, err := Load(flags)
	require.NoError(t, err)

	assert.Equal(t, "from-json", cfg.Adapter.Repo)
	assert.Equal(t, "env-owner", cfg.Adapter.Owner)
	assert.Equal(t, "flag-branch", cfg.Adapter.Branch)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "index.html", cfg.Storage.Site.PagePath)
}

func TestLoad_MissingJSONFile(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{"CONFIG": filepath.Join(t.TempDir(), "missing.json")})

	cfg, err := Load(nil)
	assert.Nil(t, cfg)
	assert.Error(t, err)
}
