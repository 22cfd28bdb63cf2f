// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const defaultSyncTriggersPerMinute = 6

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(5, "application/json"))

	router.Handle("/metrics", promhttp.Handler())

	triggers := h.server.SyncTriggersPerMinute
	if triggers <= 0 {
		triggers = defaultSyncTriggersPerMinute
	}

	router.Route("/api", func(r chi.Router) {
		if h.server.RequestTimeout > 0 {
			r.Use(middleware.Timeout(h.server.RequestTimeout))
		}

		r.Get("/health", h.health)
		r.Get("/reports", h.listReports)
		r.Get("/connection/test", h.testConnection)
		r.Get("/tables/{report}/preview", h.previewTable)

		r.Route("/sync", func(r chi.Router) {
			r.Get("/history", h.syncHistory)
			r.Get("/issues", h.syncIssues)
			r.Get("/conflicts", h.syncConflicts)
			r.Get("/status/{report}", h.syncStatus)

			r.With(h.adminOnly, httprate.LimitByIP(triggers, time.Minute)).
				Post("/{mode}", h.triggerSync)
		})

		r.Route("/records/{report}/{id}", func(r chi.Router) {
			r.With(h.adminOnly).Put("/", h.updateRecord)
			r.Get("/pending", h.pendingForRecord)
		})

		r.Route("/queue", func(r chi.Router) {
			r.Get("/status", h.queueStatus)
			r.With(h.adminOnly).Post("/process", h.processQueue)
		})
	})

	return router
}
