// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/stagehaus/zoho-sync/internal/logger"
	"github.com/stagehaus/zoho-sync/internal/service"
	"github.com/stagehaus/zoho-sync/internal/store"
	"github.com/stagehaus/zoho-sync/internal/utils"
	"github.com/stagehaus/zoho-sync/models"
)

// updateRecord queues an admin edit for the remote write and then applies it
// to the local table. The local row is only marked pending_push once the
// edit is queued. A report that was never synced locally still gets the
// edit queued.
func (h *Handler) updateRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	report := chi.URLParam(r, "report")
	recordID := chi.URLParam(r, "id")

	var req models.RecordUpdateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.updateRecord").Msg(ErrInvalidJSON.Error())
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		log.Err(err).Str("func", "*Handler.updateRecord").Msg("invalid record update")
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	changes := h.editableChanges(req.Changes)
	if len(changes) == 0 {
		log.Warn().Str("func", "*Handler.updateRecord").Str("record_id", recordID).Msg(service.ErrNoChanges.Error())
		utils.WriteError(w, service.ErrNoChanges.Error(), statusFromError(service.ErrNoChanges))
		return
	}

	queued, err := h.services.QueueService.QueueUpdate(ctx, recordID, report, changes, req.OldValues)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateRecord").Str("record_id", recordID).Msg("error queueing update")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	err = h.services.SyncService.ApplyLocalEdit(ctx, report, recordID, changes)
	switch {
	case err == nil:
	case errors.Is(err, store.ErrTableNotFound) || errors.Is(err, store.ErrRecordNotFound):
		log.Warn().Err(err).
			Str("func", "*Handler.updateRecord").
			Str("report", report).
			Str("record_id", recordID).
			Msg("record not cached locally, queued remote update only")
	default:
		// The queued push settles the row and the next sync refreshes it.
		log.Err(err).
			Str("func", "*Handler.updateRecord").
			Str("report", report).
			Str("record_id", recordID).
			Msg("error applying local edit to queued update")
	}

	pending, err := h.services.QueueService.PendingForRecord(ctx, recordID, report)
	if err != nil {
		log.Warn().Err(err).Str("func", "*Handler.updateRecord").Msg("error counting pending updates")
		pending = queued
	}

	subject, _ := utils.GetSubjectFromContext(ctx)
	log.Info().
		Str("func", "*Handler.updateRecord").
		Str("report", report).
		Str("record_id", recordID).
		Str("subject", subject).
		Int("queued", queued).
		Msg("record update queued")

	utils.WriteJSON(w, models.RecordUpdateResponse{
		RecordID: recordID,
		Queued:   queued,
		Pending:  pending,
	}, http.StatusAccepted)
}

func (h *Handler) pendingForRecord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	report := chi.URLParam(r, "report")
	recordID := chi.URLParam(r, "id")

	pending, err := h.services.QueueService.PendingForRecord(r.Context(), recordID, report)
	if err != nil {
		log.Err(err).Str("func", "*Handler.pendingForRecord").Str("record_id", recordID).Msg("error counting pending updates")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.PendingCountResponse{RecordID: recordID, Pending: pending}, http.StatusOK)
}

// editableChanges drops the primary key and system columns from changes.
func (h *Handler) editableChanges(changes map[string]string) map[string]string {
	out := make(map[string]string, len(changes))
	for field, value := range changes {
		col, err := store.SanitizeIdentifier(field)
		if err != nil {
			continue
		}
		if strings.EqualFold(col, h.primaryKey) || models.IsSystemColumn(strings.ToLower(col)) {
			continue
		}
		out[field] = value
	}
	return out
}
