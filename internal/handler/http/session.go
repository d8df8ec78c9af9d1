// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-site-keeper/internal/logger"
	"github.com/MKhiriev/go-site-keeper/internal/utils"
	"github.com/MKhiriev/go-site-keeper/models"
)

const sessionCookieName = "sitekeeper_session"

// sessionConfig signs and verifies the admin session cookie. The cookie is
// an HS256 JWT whose subject is the admin mode the session was opened in.
type sessionConfig struct {
	signKey  string
	issuer   string
	duration time.Duration
}

func (s sessionConfig) issue(w http.ResponseWriter, state models.AuthState) error {
	token, err := utils.GenerateSessionToken(s.issuer, state.String(), s.duration, s.signKey)
	if err != nil {
		return fmt.Errorf("issue session: %w", err)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token.SignedString,
		Path:     "/",
		Expires:  token.ExpiresAt.Time,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
	return nil
}

func (s sessionConfig) clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

// sessionValue returns the session token from the cookie, or from an
// "Authorization: Bearer" header for scripted clients.
func sessionValue(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", ErrNoSession
	}
	value, err := utils.ParseBearerToken(header)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}
	return value, nil
}

// verify returns the admin mode of the request's session.
func (s sessionConfig) verify(r *http.Request) (string, error) {
	value, err := sessionValue(r)
	if err != nil {
		return "", err
	}
	token, err := utils.ValidateSessionToken(value, s.signKey, s.issuer)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}
	return token.Mode()
}

// auth rejects requests without a valid session and stores the session
// mode in the request context under [utils.SessionModeCtxKey].
func (s sessionConfig) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mode, err := s.verify(r)
		if err != nil {
			logger.FromRequest(r).Err(err).Msg("session rejected")
			s.clear(w)
			writeError(w, r, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(utils.WithSessionMode(r.Context(), mode)))
	})
}

// optional stores the session mode when the request has a valid session
// and passes every request through.
func (s sessionConfig) optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if mode, err := s.verify(r); err == nil {
			r = r.WithContext(utils.WithSessionMode(r.Context(), mode))
		}
		next.ServeHTTP(w, r)
	})
}

// requireAdmin rejects sessions that outlived the login state, e.g. after
// a logout from the CLI or a token the repository rejected.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.services.Credentials.State().IsAdmin() {
			h.session.clear(w)
			writeError(w, r, ErrInvalidSession)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// isAdminRequest reports whether r carries a session matching an active
// admin state.
func (h *Handler) isAdminRequest(r *http.Request) bool {
	_, ok := utils.GetSessionModeFromContext(r.Context())
	return ok && h.services.Credentials.State().IsAdmin()
}
