// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// Flags holds the values bound to a flag set by [RegisterFlags]. Unset flags
// keep their zero value and therefore never override other sources.
type Flags struct {
	serverAddress NetAddress

	jsonConfigPath string
	localPassword  string
	tokenSignKey   string
	tokenDuration  time.Duration
	logFile        string

	databaseDSN string
	siteDir     string
	pagePath    string
	configPath  string

	requestTimeout time.Duration

	apiURL         string
	owner          string
	repo           string
	branch         string
	adapterTimeout time.Duration
}

// RegisterFlags defines every configuration flag on fs.
//
// Flags:
//
//	-a/--address            admin server address in format [host]:[port]
//	-c/--config             json file path with configs
//	--local-password        local-only admin password
//	--token-sign-key        admin session signing key
//	--token-duration        admin session lifetime (e.g. "12h")
//	--log-file              log file path
//	-d/--db                 local state database DSN
//	-s/--site-dir           site directory
//	--page-path             page path inside the site
//	--config-path           config artifact path inside the site
//	--request-timeout       admin server request timeout
//	--api-url               GitHub API base URL
//	--owner, --repo         target repository
//	-b/--branch             target branch
//	--api-timeout           outbound request timeout
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}

	fs.VarP(&f.serverAddress, "address", "a", "Admin server address host:port")
	fs.StringVarP(&f.jsonConfigPath, "config", "c", "", "JSON config file path")
	fs.StringVar(&f.localPassword, "local-password", "", "Password for local-only admin mode")
	fs.StringVar(&f.tokenSignKey, "token-sign-key", "", "Admin session signing key")
	fs.DurationVar(&f.tokenDuration, "token-duration", 0, "Admin session lifetime (e.g., 12h)")
	fs.StringVar(&f.logFile, "log-file", "", "Log file path")
	fs.StringVarP(&f.databaseDSN, "db", "d", "", "Local state database DSN")
	fs.StringVarP(&f.siteDir, "site-dir", "s", "", "Site directory")
	fs.StringVar(&f.pagePath, "page-path", "", "Page path relative to the site root")
	fs.StringVar(&f.configPath, "config-path", "", "Config artifact path relative to the site root")
	fs.DurationVar(&f.requestTimeout, "request-timeout", 0, "Admin server request timeout (e.g., 30s)")
	fs.StringVar(&f.apiURL, "api-url", "", "GitHub API base URL")
	fs.StringVar(&f.owner, "owner", "", "Repository owner")
	fs.StringVar(&f.repo, "repo", "", "Repository name")
	fs.StringVarP(&f.branch, "branch", "b", "", "Repository branch")
	fs.DurationVar(&f.adapterTimeout, "api-timeout", 0, "GitHub request timeout (e.g., 15s)")

	return f
}

func (f *Flags) config() (*StructuredConfig, error) {
	return &StructuredConfig{
		App: App{
			LocalPassword: f.localPassword,
			TokenSignKey:  f.tokenSignKey,
			TokenDuration: f.tokenDuration,
			LogFile:       f.logFile,
		},
		Storage: Storage{
			DB: DB{DSN: f.databaseDSN},
			Site: Site{
				Dir:        f.siteDir,
				PagePath:   f.pagePath,
				ConfigPath: f.configPath,
			},
		},
		Server: Server{
			HTTPAddress:    f.serverAddress.String(),
			RequestTimeout: f.requestTimeout,
		},
		Adapter: Adapter{
			BaseURL:        f.apiURL,
			Owner:          f.owner,
			Repo:           f.repo,
			Branch:         f.branch,
			RequestTimeout: f.adapterTimeout,
		},
		JSONFilePath: f.jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}
