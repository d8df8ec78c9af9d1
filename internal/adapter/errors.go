// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrUnauthorized means the remote rejected the access token (HTTP 401,
	// or 403 with "Bad credentials"). Callers should discard the token.
	ErrUnauthorized = errors.New("repository rejected credentials")
	// ErrForbidden means the token is valid but lacks permission, or a rate
	// limit was hit.
	ErrForbidden = errors.New("repository access forbidden")
	// ErrNotFound means the file (or repository) does not exist.
	ErrNotFound = errors.New("file not found")
	// ErrConflict means the revision id no longer matches the remote file.
	ErrConflict = errors.New("revision conflict")
	// ErrRemote covers every other non-success response.
	ErrRemote = errors.New("repository error")
	// ErrNetwork wraps transport failures (DNS, TLS, timeouts).
	ErrNetwork = errors.New("network error")
)
