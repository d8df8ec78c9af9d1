// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the admin workflows: logging in with the shared or
// local password, saving page content locally, and publishing the page (or
// the shared access record) to the remote repository.
package service

import (
	"context"

	"github.com/MKhiriev/go-site-keeper/models"
)

// PageEditor is the part of the page editor the workflows need. It is
// implemented by *editor.Page.
type PageEditor interface {
	// Capture reads the editable regions and the dynamic dialogs.
	Capture() (models.Document, error)
	// Apply writes a document onto the page, all or nothing.
	Apply(doc models.Document) error
	// Sanitized renders a copy of the page with every admin affordance
	// removed. The page itself is not modified.
	Sanitized() ([]byte, error)
}

// AuthenticationPolicy decides whether a password grants admin access.
type AuthenticationPolicy interface {
	// Authenticate returns the admin state the password grants and, for
	// online access, the recovered repository token. A rejected password
	// yields [ErrInvalidPassword].
	Authenticate(password string) (models.AuthState, string, error)
}

// CredentialStore owns the login state and the cached access token.
type CredentialStore interface {
	// Login moves through Attempting to AdminLocal or AdminOnline, or back
	// to LoggedOut when the password is rejected. The password is trimmed.
	Login(ctx context.Context, password string) (models.AuthState, error)
	// Logout returns to LoggedOut and forgets the access token.
	Logout(ctx context.Context) error
	// State returns the current login state.
	State() models.AuthState
	// Token returns the cached access token, or [ErrNoAccessToken]. Reading
	// the token never changes the login state.
	Token(ctx context.Context) (string, error)
	// ClearToken forgets a token the repository has rejected and returns
	// to LoggedOut.
	ClearToken(ctx context.Context) error
	// SetSharedRecord replaces the shared record used by later logins.
	SetSharedRecord(record models.EncryptedSecretRecord)
	// SharedRecord returns the shared record, if one is configured.
	SharedRecord() (models.EncryptedSecretRecord, bool)
}

// ContentService captures page content and keeps a local snapshot of it.
type ContentService interface {
	Capture(page PageEditor) (models.ContentSnapshot, error)
	PersistLocally(ctx context.Context, snapshot models.ContentSnapshot) error
	// Save captures and persists in one step and notifies the user.
	Save(ctx context.Context, page PageEditor) (models.ContentSnapshot, error)
	// Restore applies the saved snapshot to page. It reports false when
	// nothing was saved.
	Restore(ctx context.Context, page PageEditor) (bool, error)
}

// PublishService commits files to the remote repository using the
// read-revision-then-overwrite protocol.
type PublishService interface {
	// Publish commits the sanitized page.
	Publish(ctx context.Context, page PageEditor) (models.RemoteFileRevision, error)
	// PublishAuxiliaryFile commits content to path.
	PublishAuxiliaryFile(ctx context.Context, path string, content []byte, message string) (models.RemoteFileRevision, error)
}

// AccessService shares repository access with other editors.
type AccessService interface {
	// ShareAccess encrypts the cached token under password and publishes
	// the record in the site's config artifact.
	ShareAccess(ctx context.Context, password string) (models.EncryptedSecretRecord, error)
}

// SaveService implements the toolbar's save button.
type SaveService interface {
	// SaveChanges saves locally and, when a token is cached, publishes.
	SaveChanges(ctx context.Context, page PageEditor) error
}
