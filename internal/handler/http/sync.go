// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stagehaus/zoho-sync/internal/logger"
	"github.com/stagehaus/zoho-sync/internal/service"
	"github.com/stagehaus/zoho-sync/internal/utils"
	"github.com/stagehaus/zoho-sync/models"
)

func (h *Handler) triggerSync(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	mode, ok := models.ParseSyncType(chi.URLParam(r, "mode"))
	if !ok {
		log.Warn().Str("func", "*Handler.triggerSync").Str("mode", chi.URLParam(r, "mode")).Msg("unknown sync mode")
		utils.WriteError(w, service.ErrUnknownSyncMode.Error(), http.StatusBadRequest)
		return
	}

	var req models.SyncTriggerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.triggerSync").Msg(ErrInvalidJSON.Error())
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		log.Err(err).Str("func", "*Handler.triggerSync").Msg("invalid sync request")
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	subject, _ := utils.GetSubjectFromContext(r.Context())
	log.Info().
		Str("func", "*Handler.triggerSync").
		Str("mode", string(mode)).
		Strs("reports", req.Reports).
		Str("subject", subject).
		Msg("manual sync triggered")

	results := h.services.SyncService.SyncReports(r.Context(), req.Reports, mode)

	utils.WriteJSON(w, models.SyncTriggerResponse{Results: results}, http.StatusOK)
}

func (h *Handler) syncHistory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	limit, err := limitParam(r)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	entries, err := h.services.SyncService.History(r.Context(), limit)
	if err != nil {
		log.Err(err).Str("func", "*Handler.syncHistory").Msg("error getting sync history")
		utils.WriteError(w, "error getting sync history", statusFromError(err))
		return
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) syncIssues(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	limit, err := limitParam(r)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	issues, err := h.services.SyncService.Issues(r.Context(), limit)
	if err != nil {
		log.Err(err).Str("func", "*Handler.syncIssues").Msg("error getting sync issues")
		utils.WriteError(w, "error getting sync issues", statusFromError(err))
		return
	}

	utils.WriteJSON(w, issues, http.StatusOK)
}

func (h *Handler) syncConflicts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	limit, err := limitParam(r)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	conflicts, err := h.services.SyncService.Conflicts(r.Context(), limit)
	if err != nil {
		log.Err(err).Str("func", "*Handler.syncConflicts").Msg("error getting sync conflicts")
		utils.WriteError(w, "error getting sync conflicts", statusFromError(err))
		return
	}

	utils.WriteJSON(w, conflicts, http.StatusOK)
}

func (h *Handler) syncStatus(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	report := chi.URLParam(r, "report")

	status, err := h.services.SyncService.Status(r.Context(), report)
	if err != nil {
		log.Err(err).Str("func", "*Handler.syncStatus").Str("report", report).Msg("error getting sync status")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, status, http.StatusOK)
}
