// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-site-keeper/internal/editor"
)

// Init builds the router.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getVersion)

		r.Route("/admin", func(r chi.Router) {
			// routes without a session
			r.Post("/login", h.login)
			r.Get("/state", h.state)

			r.Group(func(r chi.Router) {
				r.Use(h.session.auth)
				r.Use(h.requireAdmin)

				r.Post("/logout", h.logout)
				r.Put("/regions/{region}", h.setRegion)
				r.Post("/modals", h.addModal)
				r.Post("/save", h.save)
				r.Post("/share-access", h.shareAccess)
				r.Get("/notifications", h.listNotifications)
			})
		})
	})

	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		r.Use(h.session.optional)

		r.Get(editor.AdminScriptPath, serveAdminScript)
		r.Get("/", h.servePage)
		r.Get("/"+h.pagePath, h.servePage)
		r.Get("/*", h.serveStatic)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
