// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-site-keeper/internal/adapter"
	"github.com/MKhiriev/go-site-keeper/internal/app"
	"github.com/MKhiriev/go-site-keeper/internal/crypto"
	"github.com/MKhiriev/go-site-keeper/internal/editor"
	"github.com/MKhiriev/go-site-keeper/internal/logger"
	"github.com/MKhiriev/go-site-keeper/internal/service"
	"github.com/MKhiriev/go-site-keeper/internal/utils"
	"github.com/MKhiriev/go-site-keeper/internal/validators"
)

// errorStatuses is checked in order; the first match wins. Order matters for
// errors that wrap more than one sentinel.
var errorStatuses = []struct {
	err    error
	status int
}{
	{ErrInvalidJSON, http.StatusBadRequest},
	{validators.ErrPasswordTooLong, http.StatusBadRequest},
	{validators.ErrEmptyMarkup, http.StatusBadRequest},
	{validators.ErrMarkupTooLarge, http.StatusBadRequest},
	{ErrNoSession, http.StatusUnauthorized},
	{ErrInvalidSession, http.StatusUnauthorized},

	{service.ErrInvalidPassword, http.StatusUnauthorized},
	{service.ErrNotLoggedIn, http.StatusUnauthorized},
	{service.ErrNoAccessToken, http.StatusForbidden},
	{crypto.ErrEmptyPassword, http.StatusBadRequest},

	{editor.ErrUnknownRegion, http.StatusNotFound},
	{editor.ErrRegionMissing, http.StatusNotFound},
	{editor.ErrInvalidMarkup, http.StatusBadRequest},

	{adapter.ErrUnauthorized, http.StatusUnauthorized},
	{adapter.ErrForbidden, http.StatusBadGateway},
	{adapter.ErrConflict, http.StatusBadGateway},
	{adapter.ErrNotFound, http.StatusBadGateway},
	{adapter.ErrRemote, http.StatusBadGateway},
	{adapter.ErrNetwork, http.StatusBadGateway},
}

func mapHTTPError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with its mapped status. Internal errors
// are not echoed to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := mapHTTPError(err)
	log := logger.FromRequest(r)

	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error")
		message = app.MsgInternalServerError
	} else {
		log.Warn().Err(err).Int("status", status).Send()
	}

	utils.WriteError(w, message, status)
}
