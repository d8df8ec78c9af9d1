// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PasswordRequest is the body of the login and share-access calls.
type PasswordRequest struct {
	Password string `json:"password"`
}

// MarkupRequest carries HTML for a region or a new dialog.
type MarkupRequest struct {
	Markup string `json:"markup"`
}

// AdminState describes the login state to the page script.
type AdminState struct {
	State           string `json:"state"`
	HasToken        bool   `json:"has_token"`
	HasSharedRecord bool   `json:"has_shared_record"`
}

// AddModalResponse reports whether a dialog was appended. A dialog whose id
// already exists is left alone.
type AddModalResponse struct {
	Added bool `json:"added"`
}

// VersionResponse is the build metadata served by the admin API.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
