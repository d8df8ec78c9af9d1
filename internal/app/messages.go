// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings shared by the admin
// HTTP surface and the CLI, so both describe an outcome with the same words.
package app

const (
	// MsgInternalServerError replaces the text of unexpected errors in HTTP
	// responses.
	MsgInternalServerError = "internal server error"

	// MsgLoggedInLocal is printed after a login that grants local editing
	// only. Changes will be saved on this machine and not published.
	MsgLoggedInLocal = "Logged in (local mode). Changes are saved on this machine only."

	// MsgLoggedInOnline is printed after a login that unlocked the
	// repository access token.
	MsgLoggedInOnline = "Logged in. Changes will be published to the repository."

	// MsgLoggedOut is printed after the stored access token was removed.
	MsgLoggedOut = "Logged out."

	// MsgNotLoggedIn is shown when an operation needs an admin login.
	MsgNotLoggedIn = "Not logged in. Run `sitekeeper login` first."

	// MsgRecordCopied is printed when share-access --copy succeeded.
	MsgRecordCopied = "Encrypted record copied to the clipboard."

	// MsgNoSharedRecord is shown by decrypt when neither a record file was
	// given nor the site config artifact holds one.
	MsgNoSharedRecord = "No encrypted record: pass a file or set up shared access first."
)
