package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Host: "", Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    NetAddress
		wantErr bool
	}{
		{name: "localhost", input: "localhost:8080", want: NetAddress{Host: "localhost", Port: 8080}},
		{name: "ipv4", input: "127.0.0.1:9000", want: NetAddress{Host: "127.0.0.1", Port: 9000}},
		{name: "all interfaces", input: ":8080", want: NetAddress{Port: 8080}},
		{name: "missing port", input: "localhost", wantErr: true},
		{name: "non-numeric port", input: "localhost:http", wantErr: true},
		{name: "zero port", input: "localhost:0", wantErr: true},
		{name: "port too large", input: "localhost:70000", wantErr: true},
		{name: "hostname", input: "example.com:80", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a)
		})
	}
}

func TestRegisterFlags_Parse(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags := RegisterFlags(fs)

	err := fs.Parse([]string{
		"-a", "127.0.0.1:9999",
		"-c", "cfg.json",
		"--local-password", "lokalne",
		"--token-duration", "2h",
		"-d", "state.db",
		"-s", "./site",
		"--page-path", "pl/index.html",
		"--owner", "o",
		"--repo", "r",
		"-b", "main",
		"--api-timeout", "5s",
	})
	require.NoError(t, err)

	cfg, err := flags.config()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9999", cfg.Server.HTTPAddress)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
	assert.Equal(t, "lokalne", cfg.App.LocalPassword)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "state.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "./site", cfg.Storage.Site.Dir)
	assert.Equal(t, "pl/index.html", cfg.Storage.Site.PagePath)
	assert.Equal(t, "o", cfg.Adapter.Owner)
	assert.Equal(t, "r", cfg.Adapter.Repo)
	assert.Equal(t, "main", cfg.Adapter.Branch)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
}

func TestRegisterFlags_InvalidAddress(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)

	assert.Error(t, fs.Parse([]string{"--address", "nope"}))
}
