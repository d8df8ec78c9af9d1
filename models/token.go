// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// SessionToken wraps the signed admin-session JWT issued by the admin
// server after a successful login.
//
// The subject claim holds the [AuthState] name the session was opened with
// so that handlers can tell a local-only session from an online one without
// consulting the credential store.
type SessionToken struct {
	// Token is the underlying JWT, excluded from serialization.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form stored in the session cookie.
	SignedString string `json:"-"`
}

// Mode returns the admin state recorded in the subject claim.
func (t *SessionToken) Mode() (string, error) {
	mode, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting mode from session token: %w", err)
	}
	if mode == "" {
		return "", fmt.Errorf("session token has empty subject")
	}
	return mode, nil
}

// String returns the compact JWS serialization of the token.
func (t *SessionToken) String() string {
	return t.SignedString
}
