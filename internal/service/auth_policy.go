// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-site-keeper/internal/crypto"
	"github.com/MKhiriev/go-site-keeper/models"
)

// sharedSecretPolicy grants online access to whoever can decrypt the shared
// record published in the site config.
type sharedSecretPolicy struct {
	codec  crypto.SecretCodec
	record models.EncryptedSecretRecord
}

// NewSharedSecretPolicy returns the policy used when the site carries a
// shared access record.
func NewSharedSecretPolicy(codec crypto.SecretCodec, record models.EncryptedSecretRecord) AuthenticationPolicy {
	return &sharedSecretPolicy{codec: codec, record: record}
}

func (p *sharedSecretPolicy) Authenticate(password string) (models.AuthState, string, error) {
	token, err := p.codec.Decrypt(p.record, password)
	if err != nil {
		if errors.Is(err, crypto.ErrAuthenticationFailure) || errors.Is(err, crypto.ErrEmptyPassword) {
			return models.StateLoggedOut, "", fmt.Errorf("%w: %w", ErrInvalidPassword, err)
		}
		return models.StateLoggedOut, "", fmt.Errorf("decrypt shared record: %w", err)
	}
	return models.StateAdminOnline, token, nil
}

// localFallbackPolicy compares the password with a configured literal. It
// is a local-trust convenience, not a security boundary: anyone who can
// read the configuration knows the password, and no token is recovered.
type localFallbackPolicy struct {
	literal []byte
}

// NewLocalFallbackPolicy returns the policy used when the site has no
// shared record. An empty literal rejects every password.
func NewLocalFallbackPolicy(literal string) AuthenticationPolicy {
	return &localFallbackPolicy{literal: []byte(literal)}
}

func (p *localFallbackPolicy) Authenticate(password string) (models.AuthState, string, error) {
	if len(p.literal) == 0 || password == "" {
		return models.StateLoggedOut, "", ErrInvalidPassword
	}
	if subtle.ConstantTimeCompare([]byte(password), p.literal) != 1 {
		return models.StateLoggedOut, "", ErrInvalidPassword
	}
	return models.StateAdminLocal, "", nil
}

// SelectAuthenticationPolicy picks the shared-secret policy when cfg has a
// shared record and the local fallback otherwise. The two never combine: with
// a shared record present the local password is not accepted.
func SelectAuthenticationPolicy(codec crypto.SecretCodec, cfg models.SiteConfig, localPassword string) AuthenticationPolicy {
	if cfg.HasSharedSecret() {
		return NewSharedSecretPolicy(codec, *cfg.Auth)
	}
	return NewLocalFallbackPolicy(localPassword)
}
