// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrAuthenticationFailure is the single failure kind of Decrypt: the
	// password is wrong or the record was altered. The two are
	// indistinguishable by construction.
	ErrAuthenticationFailure = errors.New("authentication failure")

	// ErrEmptyPassword is returned when an empty password is supplied to
	// any codec operation.
	ErrEmptyPassword = errors.New("password must not be empty")
)
