// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/healthz", h.health)
	router.Get("/version", h.version)

	if h.metrics != nil {
		router.Handle("/metrics", h.metrics.Handler())
	}

	router.Route("/api/runs", func(r chi.Router) {
		r.Use(middleware.Compress(5, "application/json"))
		r.Get("/", h.listRuns)
		r.Get("/{id}", h.getRun)
	})

	return router
}
