// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/stagehaus/zoho-sync/internal/adapter"
	"github.com/stagehaus/zoho-sync/internal/service"
	"github.com/stagehaus/zoho-sync/internal/store"
)

// errorStatuses is checked in order; the first match wins.
var errorStatuses = []struct {
	err    error
	status int
}{
	{service.ErrUnknownSyncMode, http.StatusBadRequest},
	{service.ErrEmptyReport, http.StatusBadRequest},
	{service.ErrEmptyRecordID, http.StatusBadRequest},
	{service.ErrNoChanges, http.StatusBadRequest},
	{service.ErrSyncInProgress, http.StatusConflict},
	{service.ErrPollerNotConfigured, http.StatusServiceUnavailable},

	{store.ErrInvalidIdentifier, http.StatusBadRequest},
	{store.ErrTableNotFound, http.StatusNotFound},
	{store.ErrRecordNotFound, http.StatusNotFound},
	{store.ErrMetadataNotFound, http.StatusNotFound},
	{store.ErrDatabaseBusy, http.StatusServiceUnavailable},

	{adapter.ErrRemoteUnavailable, http.StatusServiceUnavailable},
	{adapter.ErrTooManyRequests, http.StatusServiceUnavailable},
	{adapter.ErrNotFound, http.StatusNotFound},
	{adapter.ErrTokenRefresh, http.StatusBadGateway},
	{adapter.ErrUnauthorized, http.StatusBadGateway},
	{adapter.ErrForbidden, http.StatusBadGateway},
	{adapter.ErrZohoAPI, http.StatusBadGateway},
	{adapter.ErrDecodeResponse, http.StatusBadGateway},
	{adapter.ErrBadGateway, http.StatusBadGateway},
	{adapter.ErrInternalServerError, http.StatusBadGateway},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrBeginningTransaction, http.StatusInternalServerError},
	{store.ErrCommitingTransaction, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}
