// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrInvalidPassword is returned by login when the password neither
	// decrypts the shared record nor matches the local password.
	ErrInvalidPassword = errors.New("invalid password")

	// ErrNoAccessToken is returned when an operation needs the repository
	// access token and none is cached.
	ErrNoAccessToken = errors.New("no access token")

	// ErrNotLoggedIn is returned when an admin operation is attempted
	// outside admin mode.
	ErrNotLoggedIn = errors.New("not logged in as admin")

	// ErrMalformedPersistedState is returned by restore when the saved
	// content snapshot cannot be decoded. The page is left untouched.
	ErrMalformedPersistedState = errors.New("malformed persisted content")
)
