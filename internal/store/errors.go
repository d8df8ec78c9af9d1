// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by storage methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned by [LocalStorage.Get] when nothing is stored
	// under the requested key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrSiteFileNotFound is returned when a file of the site checkout does
	// not exist.
	ErrSiteFileNotFound = errors.New("site file not found")
)
