// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers shared by the admin server
// and the repository adapter: typed context keys, JSON responses, the HTTP
// client wrapper, session-token signing, and UUID generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// SessionModeCtxKey is the key under which the auth middleware stores the
// admin mode ("admin_local" or "admin_online") of a verified session.
var SessionModeCtxKey = contextKey("sessionMode")

// WithSessionMode returns a copy of ctx carrying the session mode.
func WithSessionMode(ctx context.Context, mode string) context.Context {
	return context.WithValue(ctx, SessionModeCtxKey, mode)
}

// GetSessionModeFromContext retrieves the session mode from the context.
// ok is false when the request carried no verified session.
func GetSessionModeFromContext(ctx context.Context) (string, bool) {
	mode, ok := ctx.Value(SessionModeCtxKey).(string)
	return mode, ok && mode != ""
}
