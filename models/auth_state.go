// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AuthState is the admin-mode state of a credential store.
type AuthState int

const (
	// StateLoggedOut is the initial state and the state after logout or a
	// remote authentication rejection.
	StateLoggedOut AuthState = iota
	// StateAttempting lasts for the duration of one login attempt.
	StateAttempting
	// StateAdminLocal grants editing without any repository access.
	StateAdminLocal
	// StateAdminOnline grants editing and holds a repository access token.
	StateAdminOnline
)

// String returns the state name used in logs and API responses.
func (s AuthState) String() string {
	switch s {
	case StateLoggedOut:
		return "logged_out"
	case StateAttempting:
		return "attempting"
	case StateAdminLocal:
		return "admin_local"
	case StateAdminOnline:
		return "admin_online"
	default:
		return "unknown"
	}
}

// IsAdmin reports whether the state allows editing.
func (s AuthState) IsAdmin() bool {
	return s == StateAdminLocal || s == StateAdminOnline
}
