// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/co-script/internal/app"
	"github.com/MKhiriev/co-script/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
		r.Post("/api/auth/signup", h.signup)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/logout", h.logout)
		r.Get("/shared/{token}", h.getShared)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/auth/session", h.session)

		r.Get("/api/scripts", h.listScripts)
		r.Post("/api/scripts", h.createScript)
		r.Get("/api/scripts/{id}", h.getScript)
		r.Patch("/api/scripts/{id}", h.updateScript)
		r.Delete("/api/scripts/{id}", h.deleteScript)
		r.Get("/api/scripts/{id}/versions", h.listVersions)
		r.Post("/api/scripts/{id}/share", h.createShareLink)

		r.Post("/api/ai/score", h.score)
		r.Post("/api/ai/generate", h.generate)
		r.Post("/api/ai/hooks", h.hooks)
		r.Post("/api/ai/rewrite", h.rewrite)
		r.Post("/api/ai/analyze-url", h.analyzeURL)

		r.Get("/api/vault", h.listVaultItems)
		r.Post("/api/vault", h.createVaultItem)
		r.Delete("/api/vault/{id}", h.deleteVaultItem)

		r.Get("/api/watchlists", h.listWatchlists)
		r.Post("/api/watchlists", h.createWatchlist)
		r.Put("/api/watchlists/{id}", h.syncWatchlist)
		r.Post("/api/watchlists/{id}/sync", h.syncWatchlistResult)
		r.Delete("/api/watchlists/{id}", h.deleteWatchlist)

		r.Get("/api/frameworks", h.listFrameworks)
		r.Post("/api/frameworks", h.createFramework)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, app.MsgNotFound, http.StatusNotFound)
}
