// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/go-site-keeper/models"
)

const (
	// FieldPassword limits the password length. Emptiness is left to the
	// credential workflows so that it is reported as a wrong password.
	FieldPassword = "password"
	// FieldMarkup limits the markup size. Empty markup clears a region.
	FieldMarkup = "markup"
	// FieldMarkupRequired rejects empty markup, e.g. for a new dialog.
	FieldMarkupRequired = "markup_required"
)

const (
	// MaxPasswordLength matches the terminal prompt limit.
	MaxPasswordLength = 256
	// MaxMarkupSize bounds one region or dialog.
	MaxMarkupSize = 1 << 20
)

// AdminRequestValidator validates admin API request bodies.
type AdminRequestValidator struct {
}

// NewAdminRequestValidator returns a Validator for [models.PasswordRequest]
// and [models.MarkupRequest].
func NewAdminRequestValidator() Validator {
	return &AdminRequestValidator{}
}

func (v *AdminRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PasswordRequest:
		return v.validatePasswordRequest(ctx, value, fields...)
	case *models.PasswordRequest:
		return v.validatePasswordRequest(ctx, *value, fields...)

	case models.MarkupRequest:
		return v.validateMarkupRequest(ctx, value, fields...)
	case *models.MarkupRequest:
		return v.validateMarkupRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AdminRequestValidator) validatePasswordRequest(_ context.Context, request models.PasswordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldPassword:
			if len(request.Password) > MaxPasswordLength {
				return ErrPasswordTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AdminRequestValidator) validateMarkupRequest(_ context.Context, request models.MarkupRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMarkup}
	}

	for _, f := range fields {
		switch f {
		case FieldMarkup:
			if len(request.Markup) > MaxMarkupSize {
				return ErrMarkupTooLarge
			}
		case FieldMarkupRequired:
			if request.Markup == "" {
				return ErrEmptyMarkup
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
