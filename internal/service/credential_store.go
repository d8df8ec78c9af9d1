// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-site-keeper/internal/crypto"
	"github.com/MKhiriev/go-site-keeper/internal/logger"
	"github.com/MKhiriev/go-site-keeper/internal/store"
	"github.com/MKhiriev/go-site-keeper/models"
)

type credentialStore struct {
	// loginMu serialises login attempts; mu guards the fields below it.
	loginMu sync.Mutex

	mu            sync.RWMutex
	state         models.AuthState
	policy        AuthenticationPolicy
	shared        *models.EncryptedSecretRecord
	codec         crypto.SecretCodec
	localPassword string

	storage store.LocalStorage
	logger  *logger.Logger
}

// NewCredentialStore returns a [CredentialStore] in the LoggedOut state.
// The authentication policy is chosen from siteCfg; see
// [SelectAuthenticationPolicy].
func NewCredentialStore(storage store.LocalStorage, codec crypto.SecretCodec, siteCfg models.SiteConfig, localPassword string, logger *logger.Logger) CredentialStore {
	c := &credentialStore{
		state:         models.StateLoggedOut,
		codec:         codec,
		localPassword: localPassword,
		storage:       storage,
		logger:        logger,
	}
	if siteCfg.HasSharedSecret() {
		record := *siteCfg.Auth
		c.shared = &record
	}
	c.policy = SelectAuthenticationPolicy(codec, siteCfg, localPassword)
	return c
}

func (c *credentialStore) Login(ctx context.Context, password string) (models.AuthState, error) {
	c.loginMu.Lock()
	defer c.loginMu.Unlock()

	c.mu.Lock()
	c.state = models.StateAttempting
	policy := c.policy
	c.mu.Unlock()

	state, token, err := policy.Authenticate(strings.TrimSpace(password))
	if err != nil {
		c.setState(models.StateLoggedOut)
		c.logger.Info().Str("func", "*credentialStore.Login").Msg("login rejected")
		return models.StateLoggedOut, err
	}

	if state == models.StateAdminOnline {
		if err = c.storage.Set(ctx, store.KeyAccessToken, token); err != nil {
			c.setState(models.StateLoggedOut)
			return models.StateLoggedOut, fmt.Errorf("cache access token: %w", err)
		}
	}

	c.setState(state)
	c.logger.Info().Str("func", "*credentialStore.Login").Str("state", state.String()).Msg("logged in")
	return state, nil
}

func (c *credentialStore) Logout(ctx context.Context) error {
	c.setState(models.StateLoggedOut)
	if err := c.storage.Delete(ctx, store.KeyAccessToken); err != nil {
		return fmt.Errorf("forget access token: %w", err)
	}
	return nil
}

func (c *credentialStore) State() models.AuthState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *credentialStore) Token(ctx context.Context) (string, error) {
	token, err := c.storage.Get(ctx, store.KeyAccessToken)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return "", ErrNoAccessToken
		}
		return "", fmt.Errorf("read access token: %w", err)
	}
	if token == "" {
		return "", ErrNoAccessToken
	}
	return token, nil
}

func (c *credentialStore) ClearToken(ctx context.Context) error {
	c.setState(models.StateLoggedOut)
	if err := c.storage.Delete(ctx, store.KeyAccessToken); err != nil {
		return fmt.Errorf("forget access token: %w", err)
	}
	c.logger.Warn().Str("func", "*credentialStore.ClearToken").Msg("access token discarded")
	return nil
}

func (c *credentialStore) SetSharedRecord(record models.EncryptedSecretRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.shared = &record
	c.policy = SelectAuthenticationPolicy(c.codec, models.SiteConfig{Auth: &record}, c.localPassword)
}

func (c *credentialStore) SharedRecord() (models.EncryptedSecretRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.shared == nil {
		return models.EncryptedSecretRecord{}, false
	}
	return *c.shared, true
}

func (c *credentialStore) setState(state models.AuthState) {
	c.mu.Lock()
	c.state = state
	c.mu.Unlock()
}
