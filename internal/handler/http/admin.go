// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-site-keeper/internal/editor"
	"github.com/MKhiriev/go-site-keeper/internal/logger"
	"github.com/MKhiriev/go-site-keeper/internal/service"
	"github.com/MKhiriev/go-site-keeper/internal/utils"
	"github.com/MKhiriev/go-site-keeper/internal/validators"
	"github.com/MKhiriev/go-site-keeper/models"
)

const maxRequestBody = 4 << 20

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// decodeValid decodes the body into dst and runs the request validator on
// the given fields.
func (h *Handler) decodeValid(w http.ResponseWriter, r *http.Request, dst any, fields ...string) error {
	if err := decodeJSON(w, r, dst); err != nil {
		return err
	}
	return h.validator.Validate(r.Context(), dst, fields...)
}

func (h *Handler) currentState(r *http.Request) models.AdminState {
	creds := h.services.Credentials
	_, tokenErr := creds.Token(r.Context())
	_, shared := creds.SharedRecord()
	return models.AdminState{
		State:           creds.State().String(),
		HasToken:        tokenErr == nil,
		HasSharedRecord: shared,
	}
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.PasswordRequest
	if err := h.decodeValid(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	state, err := h.services.Credentials.Login(r.Context(), req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err = h.session.issue(w, state); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("state", state.String()).Msg("admin logged in")
	_, _ = utils.WriteJSON(w, h.currentState(r), http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.services.Credentials.Logout(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}
	h.session.clear(w)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) state(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, h.currentState(r), http.StatusOK)
}

func (h *Handler) setRegion(w http.ResponseWriter, r *http.Request) {
	id, ok := models.ParseRegionID(chi.URLParam(r, "region"))
	if !ok {
		writeError(w, r, fmt.Errorf("%w: %q", editor.ErrUnknownRegion, chi.URLParam(r, "region")))
		return
	}

	var req models.MarkupRequest
	if err := h.decodeValid(w, r, &req, validators.FieldMarkup); err != nil {
		writeError(w, r, err)
		return
	}

	err := h.page.edit(func(p *editor.Page) error {
		return p.SetRegion(id, req.Markup)
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) addModal(w http.ResponseWriter, r *http.Request) {
	var req models.MarkupRequest
	if err := h.decodeValid(w, r, &req, validators.FieldMarkupRequired, validators.FieldMarkup); err != nil {
		writeError(w, r, err)
		return
	}

	var added bool
	err := h.page.edit(func(p *editor.Page) error {
		var err error
		added, err = p.AddModal(req.Markup)
		return err
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	status := http.StatusOK
	if added {
		status = http.StatusCreated
	}
	_, _ = utils.WriteJSON(w, models.AddModalResponse{Added: added}, status)
}

// save persists the live page locally and publishes it when a token is
// held. Progress is reported through the notification feed.
func (h *Handler) save(w http.ResponseWriter, r *http.Request) {
	err := h.services.Save.SaveChanges(r.Context(), h.page.clone())
	if err != nil {
		if errors.Is(err, service.ErrNotLoggedIn) {
			h.session.clear(w)
		}
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) shareAccess(w http.ResponseWriter, r *http.Request) {
	var req models.PasswordRequest
	if err := h.decodeValid(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if h.services.Credentials.State() != models.StateAdminOnline {
		writeError(w, r, service.ErrNoAccessToken)
		return
	}

	record, err := h.services.Access.ShareAccess(r.Context(), req.Password)
	if err != nil && record.IsZero() {
		writeError(w, r, err)
		return
	}
	if err != nil {
		// published, but the local artifact could not be refreshed
		logger.FromRequest(r).Warn().Err(err).Msg("shared access published with local write failure")
	}
	_, _ = utils.WriteJSON(w, record, http.StatusOK)
}

func (h *Handler) listNotifications(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, h.notifications.Recent(), http.StatusOK)
}
