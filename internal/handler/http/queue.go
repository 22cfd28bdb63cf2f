// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/stagehaus/zoho-sync/internal/logger"
	"github.com/stagehaus/zoho-sync/internal/utils"
)

func (h *Handler) queueStatus(w http.ResponseWriter, r *http.Request) {
	counts, err := h.services.QueueService.Status(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.queueStatus").Msg("error getting queue status")
		utils.WriteError(w, "error getting queue status", statusFromError(err))
		return
	}

	utils.WriteJSON(w, counts, http.StatusOK)
}

func (h *Handler) processQueue(w http.ResponseWriter, r *http.Request) {
	result, err := h.services.QueueService.ProcessPendingUpdates(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.processQueue").Msg("error processing queue")
		utils.WriteError(w, "error processing queue", statusFromError(err))
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
