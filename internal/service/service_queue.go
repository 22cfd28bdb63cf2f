// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/stagehaus/zoho-sync/internal/adapter"
	"github.com/stagehaus/zoho-sync/internal/config"
	"github.com/stagehaus/zoho-sync/internal/logger"
	"github.com/stagehaus/zoho-sync/internal/metrics"
	"github.com/stagehaus/zoho-sync/internal/store"
	"github.com/stagehaus/zoho-sync/models"
)

type queueService struct {
	pending store.PendingUpdateRepository
	reports store.ReportRepository
	client  adapter.ZohoClient

	batchSize  int
	maxRetries int

	// mu serializes drain passes so a record is never pushed twice at once.
	mu sync.Mutex

	now    func() time.Time
	logger *logger.Logger
}

// NewQueueService builds the write-behind queue over the pending_updates table.
func NewQueueService(storages *store.Storages, client adapter.ZohoClient, cfg config.Workers, logger *logger.Logger) QueueService {
	batchSize := cfg.QueueBatchSize
	if batchSize <= 0 {
		batchSize = 10
	}

	return &queueService{
		pending:    storages.PendingUpdates,
		reports:    storages.Reports,
		client:     client,
		batchSize:  batchSize,
		maxRetries: queueMaxRetries(cfg),
		now:        time.Now,
		logger:     logger,
	}
}

// queueMaxRetries is the retry ceiling of queued rows. Rows at the ceiling
// are no longer pushed and do not keep a local row pending.
func queueMaxRetries(cfg config.Workers) int {
	if cfg.QueueMaxRetries <= 0 {
		return 5
	}
	return cfg.QueueMaxRetries
}

// QueueUpdate implements [QueueService]. Fields whose new value equals the
// supplied old value are not queued.
func (q *queueService) QueueUpdate(ctx context.Context, recordID, report string, changes, oldValues map[string]string) (int, error) {
	if strings.TrimSpace(recordID) == "" {
		return 0, ErrEmptyRecordID
	}
	if strings.TrimSpace(report) == "" {
		return 0, ErrEmptyReport
	}

	fields := make([]string, 0, len(changes))
	for field := range changes {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	updates := make([]models.PendingUpdate, 0, len(fields))
	for _, field := range fields {
		newValue := changes[field]
		update := models.PendingUpdate{
			RecordID:   recordID,
			ReportName: report,
			FieldName:  field,
			NewValue:   &newValue,
			Status:     models.QueueStatusPending,
		}
		if old, ok := oldValues[field]; ok {
			if old == newValue {
				continue
			}
			update.OldValue = &old
		}
		updates = append(updates, update)
	}
	if len(updates) == 0 {
		return 0, ErrNoChanges
	}

	ctx = logger.EnsureContext(ctx, q.logger)
	if err := q.pending.Insert(ctx, updates); err != nil {
		return 0, err
	}

	metrics.QueueUpdates.WithLabelValues("queued").Add(float64(len(updates)))
	logger.FromContext(ctx).Info().
		Str("func", "queueService.QueueUpdate").
		Str("report", report).
		Str("record_id", recordID).
		Int("fields", len(updates)).
		Msg("update queued")

	return len(updates), nil
}

// ProcessPendingUpdates implements [QueueService]. All queued fields of a
// record are sent in one request, newer values overriding older ones. A
// failed push keeps the rows pending with an incremented retry count.
func (q *queueService) ProcessPendingUpdates(ctx context.Context) (models.ProcessResult, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	ctx = logger.EnsureContext(ctx, q.logger)
	log := logger.FromContext(ctx)

	var result models.ProcessResult
	keys, err := q.pending.SelectPendingRecords(ctx, q.maxRetries, q.batchSize)
	if err != nil {
		return result, err
	}

	for _, key := range keys {
		if ctx.Err() != nil {
			break
		}
		result.Records++

		pushed, err := q.pushRecord(ctx, key)
		if err != nil {
			result.Failed++
			log.Warn().
				Err(err).
				Str("func", "queueService.ProcessPendingUpdates").
				Str("report", key.ReportName).
				Str("record_id", key.RecordID).
				Msg("failed to push queued update")
			continue
		}
		result.Succeeded++
		result.FieldsPushed += pushed
	}

	if result.Records > 0 {
		log.Info().
			Str("func", "queueService.ProcessPendingUpdates").
			Int("records", result.Records).
			Int("succeeded", result.Succeeded).
			Int("failed", result.Failed).
			Msg("queue drained")
	}

	if _, err := q.Status(ctx); err != nil {
		log.Warn().Err(err).Str("func", "queueService.ProcessPendingUpdates").Msg("failed to refresh queue depth")
	}
	return result, nil
}

func (q *queueService) pushRecord(ctx context.Context, key models.PendingRecordKey) (int, error) {
	rows, err := q.pending.ListPendingForRecord(ctx, key, q.maxRetries)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}

	fields := make(models.Record, len(rows))
	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		fields[row.FieldName] = row.NewValue
		ids = append(ids, row.ID)
	}

	if err = q.pending.MarkSyncing(ctx, ids); err != nil {
		return 0, err
	}

	pushErr := q.client.UpdateRecord(ctx, key.ReportName, key.RecordID, fields)

	// bookkeeping must land even when the caller gave up
	bg := context.WithoutCancel(ctx)
	if pushErr != nil {
		metrics.QueueUpdates.WithLabelValues("failed").Inc()
		if err := q.pending.MarkFailed(bg, ids, pushErr.Error()); err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "queueService.pushRecord").
				Str("record_id", key.RecordID).
				Msg("failed to mark queued rows as failed")
		} else {
			q.settleRow(bg, key)
		}
		return 0, pushErr
	}

	metrics.QueueUpdates.WithLabelValues("synced").Inc()
	if err = q.pending.MarkSynced(bg, ids, q.now().UTC()); err != nil {
		return 0, err
	}
	q.settleRow(bg, key)

	return len(fields), nil
}

// settleRow marks the local row synced once no open queue rows remain,
// including when the remaining rows exhausted their retries.
func (q *queueService) settleRow(ctx context.Context, key models.PendingRecordKey) {
	log := logger.FromContext(ctx)

	open, err := q.pending.CountOpenForRecord(ctx, key.RecordID, key.ReportName, q.maxRetries)
	if err != nil || open > 0 {
		return
	}

	table, err := store.SanitizeTableName(key.ReportName)
	if err != nil {
		return
	}
	exists, err := q.reports.TableExists(ctx, table)
	if err != nil || !exists {
		return
	}

	err = q.reports.SetSyncStatus(ctx, table, key.RecordID, models.RowStatusSynced)
	if err != nil && !errors.Is(err, store.ErrRecordNotFound) {
		log.Err(err).
			Str("func", "queueService.settleRow").
			Str("record_id", key.RecordID).
			Msg("failed to mark local row synced")
	}
}

// Status implements [QueueService] and refreshes the queue depth gauge.
func (q *queueService) Status(ctx context.Context) (models.QueueStatusCounts, error) {
	counts, err := q.pending.CountByStatus(ctx, q.maxRetries)
	if err != nil {
		return counts, err
	}
	metrics.QueueDepth.WithLabelValues(string(models.QueueStatusPending)).Set(float64(counts.Pending))
	metrics.QueueDepth.WithLabelValues(string(models.QueueStatusSyncing)).Set(float64(counts.Syncing))
	metrics.QueueDepth.WithLabelValues(string(models.QueueStatusSynced)).Set(float64(counts.Synced))
	metrics.QueueDepth.WithLabelValues("failed").Set(float64(counts.Failed))
	return counts, nil
}

func (q *queueService) PendingForRecord(ctx context.Context, recordID, report string) (int, error) {
	if strings.TrimSpace(recordID) == "" {
		return 0, ErrEmptyRecordID
	}
	return q.pending.CountOpenForRecord(ctx, recordID, report, q.maxRetries)
}

func (q *queueService) RecoverStale(ctx context.Context) (int64, error) {
	n, err := q.pending.ResetSyncing(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		logger.FromContext(logger.EnsureContext(ctx, q.logger)).Warn().
			Str("func", "queueService.RecoverStale").
			Int64("rows", n).
			Msg("rows left in syncing returned to pending")
	}
	return n, nil
}
