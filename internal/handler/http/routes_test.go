// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stagehaus/zoho-sync/internal/config"
	"github.com/stagehaus/zoho-sync/internal/logger"
	"github.com/stagehaus/zoho-sync/internal/mock"
	"github.com/stagehaus/zoho-sync/internal/service"
	"github.com/stagehaus/zoho-sync/models"
)

// expectedRoutes lists every route that Init() must register.
var expectedRoutes = []struct {
	method string
	path   string
}{
	{http.MethodGet, "/metrics"},
	{http.MethodGet, "/api/health"},
	{http.MethodGet, "/api/reports"},
	{http.MethodGet, "/api/connection/test"},
	{http.MethodGet, "/api/tables/{report}/preview"},
	{http.MethodGet, "/api/sync/history"},
	{http.MethodGet, "/api/sync/issues"},
	{http.MethodGet, "/api/sync/conflicts"},
	{http.MethodGet, "/api/sync/status/{report}"},
	{http.MethodPost, "/api/sync/{mode}"},
	{http.MethodPut, "/api/records/{report}/{id}/"},
	{http.MethodGet, "/api/records/{report}/{id}/pending"},
	{http.MethodGet, "/api/queue/status"},
	{http.MethodPost, "/api/queue/process"},
}

func TestInit_RegistersRoutes(t *testing.T) {
	router := NewHandler(&service.Services{}, config.StructuredConfig{}, logger.Nop()).Init()

	registered := map[string]bool{}
	err := chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+strings.ReplaceAll(route, "/*/", "/")] = true
		return nil
	})
	require.NoError(t, err)

	for _, rc := range expectedRoutes {
		assert.True(t, registered[rc.method+" "+rc.path], "route %s %s must be registered", rc.method, rc.path)
	}
}

func TestInit_Health(t *testing.T) {
	f := newAPIFixture(t)

	rr := f.do(t, http.MethodGet, "/api/health", "", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestInit_HealthWithBuildInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	info := mock.NewMockAppInfoService(ctrl)
	info.EXPECT().BuildInfo(gomock.Any()).Return(models.BuildInfoResponse{
		Version:   "1.4.0",
		Date:      "2026-10-01",
		Commit:    "abc123",
		StartedAt: time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC),
		Uptime:    "5m0s",
	})
	router := NewHandler(&service.Services{AppInfoService: info}, config.StructuredConfig{}, logger.Nop()).Init()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok","build":{"version":"1.4.0","build_date":"2026-10-01","commit":"abc123","started_at":"2026-10-15T12:00:00Z","uptime":"5m0s"}}`, rr.Body.String())
}

func TestInit_Metrics(t *testing.T) {
	f := newAPIFixture(t)

	rr := f.do(t, http.MethodGet, "/metrics", "", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "go_goroutines")
}

func TestInit_UnknownRoute(t *testing.T) {
	f := newAPIFixture(t)

	rr := f.do(t, http.MethodGet, "/api/unknown", "", "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestInit_AdminRoutesRequireToken(t *testing.T) {
	f := newAPIFixture(t)

	for _, rc := range []struct{ method, path string }{
		{http.MethodPost, "/api/sync/full"},
		{http.MethodPut, "/api/records/Item_Report/1001"},
		{http.MethodPost, "/api/queue/process"},
	} {
		rr := f.do(t, rc.method, rc.path, "", "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code, "%s %s", rc.method, rc.path)
	}
}
