// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics declares the Prometheus collectors exported by zohosync.
//
// Collectors are registered on the default registry at package init through
// promauto, so importing the package is enough to expose them on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ZohoAPICalls counts remote calls by operation and outcome
	// ("success", "error", "rejected").
	ZohoAPICalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zohosync_zoho_api_calls_total",
			Help: "Total number of Zoho Creator API calls",
		},
		[]string{"operation", "outcome"},
	)

	ZohoAPIDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "zohosync_zoho_api_duration_seconds",
			Help:    "Duration of Zoho Creator API calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// CircuitBreakerState is 0 closed, 1 half-open, 2 open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "zohosync_circuit_breaker_state",
			Help: "Current circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	TokenRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zohosync_token_refreshes_total",
			Help: "Total number of OAuth access token refreshes",
		},
		[]string{"outcome"},
	)

	SyncRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zohosync_sync_runs_total",
			Help: "Total number of sync runs by report, mode and status",
		},
		[]string{"report", "mode", "status"},
	)

	SyncDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "zohosync_sync_duration_seconds",
			Help:    "Duration of sync runs in seconds",
			Buckets: []float64{0.1, 0.5, 1, 5, 15, 30, 60, 120, 300, 600},
		},
		[]string{"report", "mode"},
	)

	SyncRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zohosync_sync_records_total",
			Help: "Total number of records processed by sync runs",
		},
		[]string{"report", "result"}, // "synced", "skipped", "pruned"
	)

	ImagesRewritten = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zohosync_images_rewritten_total",
			Help: "Total number of image field values processed by the rewriter",
		},
		[]string{"result"}, // "converted", "skipped", "preserved"
	)

	QueueUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zohosync_queue_updates_total",
			Help: "Total number of write-behind queue record pushes by outcome",
		},
		[]string{"outcome"},
	)

	QueueDepth = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "zohosync_queue_depth",
			Help: "Number of pending field updates by status",
		},
		[]string{"status"},
	)

	PollCycles = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zohosync_poll_cycles_total",
			Help: "Total number of change poller cycles",
		},
		[]string{"poller", "outcome"},
	)
)

// ObserveSync records the outcome of a single sync run.
func ObserveSync(report, mode, status string, duration time.Duration, synced, skipped, pruned int) {
	SyncRuns.WithLabelValues(report, mode, status).Inc()
	SyncDuration.WithLabelValues(report, mode).Observe(duration.Seconds())
	SyncRecords.WithLabelValues(report, "synced").Add(float64(synced))
	SyncRecords.WithLabelValues(report, "skipped").Add(float64(skipped))
	SyncRecords.WithLabelValues(report, "pruned").Add(float64(pruned))
}

// ObserveAPICall records a single remote call.
func ObserveAPICall(operation, outcome string, duration time.Duration) {
	ZohoAPICalls.WithLabelValues(operation, outcome).Inc()
	ZohoAPIDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
