// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package siteconfig reads and writes the site's config artifact, the small
// script (js/config.js) that assigns window.SITE_CONFIG and carries the
// shared, password-protected access record.
package siteconfig

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/MKhiriev/go-site-keeper/models"
)

// ErrMalformedConfig is returned when the artifact has an auth entry that
// cannot be decoded into a complete record.
var ErrMalformedConfig = errors.New("malformed site config")

const globalName = "SITE_CONFIG"

// authKey matches the auth property whether its key is quoted or bare.
var authKey = regexp.MustCompile(`(?:"auth"|'auth'|\bauth)\s*:\s*`)

// Parse decodes a config artifact. Both a plain JSON object and the script
// form are accepted. An artifact without SITE_CONFIG or without auth yields
// an empty config.
func Parse(data []byte) (models.SiteConfig, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return models.SiteConfig{}, nil
	}

	if trimmed[0] == '{' {
		var cfg models.SiteConfig
		if err := json.Unmarshal(trimmed, &cfg); err != nil {
			return models.SiteConfig{}, fmt.Errorf("%w: %w", ErrMalformedConfig, err)
		}
		return checked(cfg.Auth)
	}

	start := bytes.Index(trimmed, []byte(globalName))
	if start < 0 {
		return models.SiteConfig{}, nil
	}
	rest := trimmed[start:]

	loc := authKey.FindIndex(rest)
	if loc == nil {
		return models.SiteConfig{}, nil
	}

	// the decoder stops after the first complete value
	var record *models.EncryptedSecretRecord
	if err := json.NewDecoder(bytes.NewReader(rest[loc[1]:])).Decode(&record); err != nil {
		return models.SiteConfig{}, fmt.Errorf("%w: auth: %w", ErrMalformedConfig, err)
	}
	return checked(record)
}

func checked(record *models.EncryptedSecretRecord) (models.SiteConfig, error) {
	if record == nil {
		return models.SiteConfig{}, nil
	}
	if record.Cipher == "" || record.IV == "" || record.Salt == "" {
		return models.SiteConfig{}, fmt.Errorf("%w: auth record is incomplete", ErrMalformedConfig)
	}
	return models.SiteConfig{Auth: record}, nil
}

// Render produces the script form of cfg, stamped with now in local time.
func Render(cfg models.SiteConfig, now time.Time) []byte {
	var b bytes.Buffer
	b.WriteString("/**\n")
	b.WriteString(" * Global Configuration for Admin Access\n")
	fmt.Fprintf(&b, " * Last Updated: %s\n", now.Local().Format(time.DateTime))
	b.WriteString(" */\n")

	if cfg.Auth == nil {
		b.WriteString("window.SITE_CONFIG = {};\n")
		return b.Bytes()
	}

	// a record of plain strings always marshals
	record, _ := json.MarshalIndent(cfg.Auth, "    ", "    ")
	b.WriteString("window.SITE_CONFIG = {\n")
	b.WriteString("    auth: ")
	b.Write(record)
	b.WriteString("\n};\n")
	return b.Bytes()
}
