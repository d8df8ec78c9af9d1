// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks admin API input before it reaches the page
// editor or the credential workflows.
//
// A Validator accepts a value and an optional list of field names. With no
// fields the default set for the value's type is checked; with fields only
// those rules run, in the given order.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
