// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stagehaus/zoho-sync/internal/logger"
	"github.com/stagehaus/zoho-sync/internal/utils"
	"github.com/stagehaus/zoho-sync/models"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	resp := models.HealthResponse{Status: "ok"}
	if h.services.AppInfoService != nil {
		build := h.services.AppInfoService.BuildInfo(r.Context())
		resp.Build = &build
	}
	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) listReports(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	reports, err := h.services.SyncService.ListReports(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listReports").Msg("error listing reports")
		utils.WriteError(w, "error listing reports", statusFromError(err))
		return
	}

	utils.WriteJSON(w, reports, http.StatusOK)
}

func (h *Handler) previewTable(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	report := chi.URLParam(r, "report")

	limit, err := limitParam(r)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	rows, err := h.services.SyncService.Preview(r.Context(), report, limit)
	if err != nil {
		log.Err(err).Str("func", "*Handler.previewTable").Str("report", report).Msg("error previewing table")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, rows, http.StatusOK)
}

// testConnection answers 200 when Zoho is reachable and 502 otherwise; the
// body carries the detail in both cases.
func (h *Handler) testConnection(w http.ResponseWriter, r *http.Request) {
	result := h.services.SyncService.TestConnection(r.Context())
	if !result.OK {
		logger.FromRequest(r).Warn().
			Str("func", "*Handler.testConnection").
			Str("error", result.Error).
			Msg("zoho connection test failed")
		utils.WriteJSON(w, result, http.StatusBadGateway)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
