// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	_ "embed"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-site-keeper/internal/logger"
)

//go:embed assets/admin.js
var adminScript []byte

// servePage renders the live page. Admin sessions get the editing
// decorations; everyone else gets the page with the login hook attached.
func (h *Handler) servePage(w http.ResponseWriter, r *http.Request) {
	page := h.page.clone()

	var err error
	if h.isAdminRequest(r) {
		_, tokenErr := h.services.Credentials.Token(r.Context())
		err = page.EnableAdminMode(tokenErr == nil)
	} else {
		err = page.AttachAdminScript()
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	body, err := page.Render()
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(body); err != nil {
		logger.FromRequest(r).Err(err).Msg("write page")
	}
}

// serveStatic serves regular files of the site directory. Directories,
// dot-files and the server's own state files answer 404.
func (h *Handler) serveStatic(w http.ResponseWriter, r *http.Request) {
	clean := path.Clean("/" + r.URL.Path)
	for _, segment := range strings.Split(clean, "/") {
		if strings.HasPrefix(segment, ".") {
			http.NotFound(w, r)
			return
		}
	}

	name := filepath.Join(h.siteDir, filepath.FromSlash(clean))
	if abs, err := filepath.Abs(name); err == nil {
		if _, hidden := h.private[abs]; hidden {
			http.NotFound(w, r)
			return
		}
	}

	f, err := os.Open(name)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.FromRequest(r).Err(err).Str("file", name).Msg("open static file")
		}
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}

	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}

func serveAdminScript(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(adminScript)
}
