// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the session middleware. Callers can match against them
// with [errors.Is].
var (
	// ErrNoSession is returned when the request carries no session cookie.
	ErrNoSession = errors.New("no admin session")

	// ErrInvalidSession is returned when the session cookie is expired,
	// forged or issued by another server.
	ErrInvalidSession = errors.New("invalid admin session")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")
)
