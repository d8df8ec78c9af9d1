// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrPasswordTooLong = errors.New("password is too long")
	ErrEmptyMarkup     = errors.New("markup is required")
	ErrMarkupTooLarge  = errors.New("markup is too large")
)
