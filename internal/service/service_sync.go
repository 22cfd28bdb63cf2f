// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/stagehaus/zoho-sync/internal/adapter"
	"github.com/stagehaus/zoho-sync/internal/config"
	"github.com/stagehaus/zoho-sync/internal/imageurl"
	"github.com/stagehaus/zoho-sync/internal/logger"
	"github.com/stagehaus/zoho-sync/internal/metrics"
	"github.com/stagehaus/zoho-sync/internal/store"
	"github.com/stagehaus/zoho-sync/models"
)

type syncService struct {
	reports   store.ReportRepository
	metadata  store.SyncMetadataRepository
	logs      store.SyncLogRepository
	issues    store.SyncIssueRepository
	pending   store.PendingUpdateRepository
	conflicts store.SyncConflictRepository

	client   adapter.ZohoClient
	rewriter *imageurl.Rewriter
	zohoCfg  config.Zoho

	configuredReports []string
	primaryKey        string
	modifiedField     string
	preservedFields   []string
	smartFields       []string
	identifyingFields []string
	smartViewReport   string
	verifyCount       bool
	queueMaxRetries   int

	inFlightMu sync.Mutex
	inFlight   map[string]struct{}

	now      func() time.Time
	location *time.Location
	logger   *logger.Logger
}

// NewSyncService wires the sync engine to the storage layer and the Zoho
// client. Configured field names are mapped to column names once here.
func NewSyncService(storages *store.Storages, client adapter.ZohoClient, rewriter *imageurl.Rewriter,
	cfg config.Sync, zohoCfg config.Zoho, workers config.Workers, logger *logger.Logger) SyncService {
	return &syncService{
		reports:   storages.Reports,
		metadata:  storages.Metadata,
		logs:      storages.Logs,
		issues:    storages.Issues,
		pending:   storages.PendingUpdates,
		conflicts: storages.Conflicts,

		client:   client,
		rewriter: rewriter,
		zohoCfg:  zohoCfg,

		configuredReports: cfg.Reports,
		primaryKey:        columnName(cfg.PrimaryKeyField, models.DefaultPrimaryKey),
		modifiedField:     columnName(cfg.ModifiedField, "Modified_Time"),
		preservedFields:   columnNames(cfg.PreservedFields),
		smartFields:       columnNames(cfg.SmartFields),
		identifyingFields: columnNames(cfg.IdentifyingFields),
		smartViewReport:   cfg.SmartViewReport,
		verifyCount:       cfg.VerifyCount,
		queueMaxRetries:   queueMaxRetries(workers),

		inFlight: make(map[string]struct{}),
		now:      time.Now,
		location: time.Local,
		logger:   logger,
	}
}

func columnName(name, fallback string) string {
	col, err := store.SanitizeIdentifier(name)
	if err != nil {
		return fallback
	}
	return col
}

func columnNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if col, err := store.SanitizeIdentifier(name); err == nil {
			out = append(out, col)
		}
	}
	return out
}

// runFunc is the body of one sync run. It fills result as it progresses.
type runFunc func(ctx context.Context, report, table string, result *models.SyncResult) error

// run guards the report against concurrent runs, executes fn and records the
// outcome in the sync log and metrics. It never panics.
func (s *syncService) run(ctx context.Context, report string, mode models.SyncType, fn runFunc) (result models.SyncResult, err error) {
	result = models.SyncResult{Report: report, Type: mode}

	table, err := s.tableName(report)
	if err != nil {
		result.Status = models.SyncStatusFailed
		result.Error = err.Error()
		return result, err
	}
	result.Table = table

	if !s.acquire(table) {
		err = fmt.Errorf("%w: %s", ErrSyncInProgress, report)
		result.Status = models.SyncStatusFailed
		result.Error = err.Error()
		return result, err
	}
	defer s.release(table)

	ctx = logger.EnsureContext(ctx, s.logger)
	zl := logger.FromContext(ctx).With().Str("report", report).Str("mode", string(mode)).Logger()
	ctx = zl.WithContext(ctx)
	log := logger.FromContext(ctx)

	start := s.now()
	func() {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%w: %v", ErrSyncPanicked, r)
			}
		}()
		err = fn(ctx, report, table, &result)
	}()
	result.Duration = s.now().Sub(start)

	if err != nil {
		result.Status = models.SyncStatusFailed
		result.Error = err.Error()
		log.Err(err).
			Str("func", "syncService.run").
			Dur("duration", result.Duration).
			Msg("sync failed")
	} else {
		result.Status = models.SyncStatusSuccess
		log.Info().
			Str("func", "syncService.run").
			Str("type", string(result.Type)).
			Int("fetched", result.RecordsFetched).
			Int("synced", result.RecordsSynced).
			Int("skipped", result.RecordsSkipped).
			Int("unchanged", result.RecordsUnchanged).
			Int("pruned", result.RecordsPruned).
			Dur("duration", result.Duration).
			Msg("sync finished")
	}

	s.writeLog(ctx, result)
	metrics.ObserveSync(report, string(result.Type), string(result.Status), result.Duration,
		result.RecordsSynced, result.RecordsSkipped, result.RecordsPruned)

	return result, err
}

func (s *syncService) tableName(report string) (string, error) {
	if strings.TrimSpace(report) == "" {
		return "", ErrEmptyReport
	}
	return store.SanitizeTableName(report)
}

func (s *syncService) acquire(table string) bool {
	s.inFlightMu.Lock()
	defer s.inFlightMu.Unlock()
	if _, busy := s.inFlight[table]; busy {
		return false
	}
	s.inFlight[table] = struct{}{}
	return true
}

func (s *syncService) release(table string) {
	s.inFlightMu.Lock()
	defer s.inFlightMu.Unlock()
	delete(s.inFlight, table)
}

func (s *syncService) writeLog(ctx context.Context, result models.SyncResult) {
	entry := models.SyncLogEntry{
		SyncType:      result.Type,
		TableName:     result.Table,
		Status:        result.Status,
		RecordsSynced: result.RecordsSynced,
	}
	if result.Error != "" {
		msg := result.Error
		entry.ErrorMessage = &msg
	}

	if _, err := s.logs.Insert(context.WithoutCancel(ctx), entry); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "syncService.writeLog").
			Msg("failed to write sync log entry")
	}
}

// FullSync implements [SyncService].
func (s *syncService) FullSync(ctx context.Context, report string) (models.SyncResult, error) {
	return s.run(ctx, report, models.SyncTypeFull, s.fullSync)
}

// IncrementalSync implements [SyncService]. Without a usable marker it runs
// a full sync instead.
func (s *syncService) IncrementalSync(ctx context.Context, report string) (models.SyncResult, error) {
	return s.run(ctx, report, models.SyncTypeIncremental, s.incrementalSync)
}

// DailySync implements [SyncService].
func (s *syncService) DailySync(ctx context.Context, report string) (models.SyncResult, error) {
	return s.run(ctx, report, models.SyncTypeDaily, s.dailySync)
}

// SmartSync implements [SyncService].
func (s *syncService) SmartSync(ctx context.Context, report string) (models.SyncResult, error) {
	return s.run(ctx, report, models.SyncTypeSmart, s.smartSync)
}

// SyncReport implements [SyncService].
func (s *syncService) SyncReport(ctx context.Context, report string, mode models.SyncType) (models.SyncResult, error) {
	switch mode {
	case models.SyncTypeFull:
		return s.FullSync(ctx, report)
	case models.SyncTypeIncremental:
		return s.IncrementalSync(ctx, report)
	case models.SyncTypeDaily:
		return s.DailySync(ctx, report)
	case models.SyncTypeSmart:
		return s.SmartSync(ctx, report)
	default:
		err := fmt.Errorf("%w: %q", ErrUnknownSyncMode, mode)
		return models.SyncResult{
			Report: report,
			Type:   mode,
			Status: models.SyncStatusFailed,
			Error:  err.Error(),
		}, err
	}
}

// SyncReports implements [SyncService].
func (s *syncService) SyncReports(ctx context.Context, reports []string, mode models.SyncType) []models.SyncResult {
	if len(reports) == 0 {
		reports = s.configuredReports
	}

	results := make([]models.SyncResult, 0, len(reports))
	for _, report := range reports {
		if ctx.Err() != nil {
			break
		}
		result, err := s.SyncReport(ctx, report, mode)
		if err != nil {
			logger.FromContext(ctx).Warn().
				Err(err).
				Str("func", "syncService.SyncReports").
				Str("report", report).
				Str("mode", string(mode)).
				Msg("report sync did not succeed")
		}
		results = append(results, result)
	}
	return results
}

func (s *syncService) fullSync(ctx context.Context, report, table string, result *models.SyncResult) error {
	log := logger.FromContext(ctx)
	result.Type = models.SyncTypeFull

	exists, err := s.reports.TableExists(ctx, table)
	if err != nil {
		return err
	}

	var snapshot map[string]models.Record
	if exists {
		if snapshot, err = s.reports.SnapshotRecords(ctx, table); err != nil {
			return err
		}
	}

	raw, err := s.client.GetAllReportData(ctx, report, "")
	if err != nil {
		return err
	}
	records := s.toRecords(raw)
	result.RecordsFetched = len(records)

	s.rewriteImages(ctx, report, records, snapshot, false, result)

	if exists {
		if err = s.reports.ClearTable(ctx, table); err != nil {
			return err
		}
	}

	if err = s.write(ctx, report, table, records, result); err != nil {
		if exists {
			s.restoreSnapshot(ctx, table, snapshot)
		}
		return err
	}

	if err = s.restorePreserved(ctx, table, records, snapshot); err != nil {
		return err
	}

	pruned := s.prunedIDs(snapshot, records)
	result.RecordsPruned = len(pruned)
	if len(pruned) > 0 {
		log.Info().
			Str("func", "syncService.fullSync").
			Int("count", len(pruned)).
			Strs("ids", head(pruned, 50)).
			Msg("records no longer present remotely were removed")
	}

	if err = s.updateMetadata(ctx, table, records, true); err != nil {
		return err
	}

	if s.verifyCount {
		s.verifyTotal(ctx, report, len(records))
	}
	return nil
}

func (s *syncService) incrementalSync(ctx context.Context, report, table string, result *models.SyncResult) error {
	log := logger.FromContext(ctx)

	meta, err := s.metadata.Get(ctx, table)
	if err != nil && !errors.Is(err, store.ErrMetadataNotFound) {
		return err
	}

	exists, err := s.reports.TableExists(ctx, table)
	if err != nil {
		return err
	}

	cutoff, parseErr := adapter.ParseModifiedTime(meta.LastModified, s.location)
	if !exists || parseErr != nil {
		log.Warn().
			Str("func", "syncService.incrementalSync").
			Str("marker", meta.LastModified).
			Bool("table_exists", exists).
			Msg("no usable sync marker, running full sync")
		return s.fullSync(ctx, report, table, result)
	}

	return s.deltaSync(ctx, report, table, result, func(ctx context.Context) ([]models.RawRecord, error) {
		return s.client.GetModifiedRecordsSince(ctx, report, cutoff)
	})
}

func (s *syncService) dailySync(ctx context.Context, report, table string, result *models.SyncResult) error {
	return s.deltaSync(ctx, report, table, result, func(ctx context.Context) ([]models.RawRecord, error) {
		return s.client.GetTodayModifiedRecords(ctx, report)
	})
}

// deltaSync upserts fetched records whose modification marker differs from
// the local one. It never clears or deletes.
func (s *syncService) deltaSync(ctx context.Context, report, table string, result *models.SyncResult,
	fetch func(ctx context.Context) ([]models.RawRecord, error)) error {
	raw, err := fetch(ctx)
	if err != nil {
		return err
	}
	records := s.toRecords(raw)
	result.RecordsFetched = len(records)

	local, err := s.localRows(ctx, table, records)
	if err != nil {
		return err
	}

	changed := make([]models.Record, 0, len(records))
	for _, rec := range records {
		if s.sameMarker(rec, local[rec.Value(s.primaryKey)]) {
			result.RecordsUnchanged++
			continue
		}
		changed = append(changed, rec)
	}

	s.rewriteImages(ctx, report, changed, local, false, result)

	if err = s.write(ctx, report, table, changed, result); err != nil {
		return err
	}
	return s.updateMetadata(ctx, table, records, false)
}

func (s *syncService) smartSync(ctx context.Context, report, table string, result *models.SyncResult) error {
	var (
		raw []models.RawRecord
		err error
	)
	if s.smartViewReport != "" {
		raw, err = s.client.GetAllReportData(ctx, s.smartViewReport, "")
	} else {
		raw, err = s.client.GetTodayModifiedRecords(ctx, report)
	}
	if err != nil {
		return err
	}
	records := s.toRecords(raw)
	result.RecordsFetched = len(records)

	local, err := s.localRows(ctx, table, records)
	if err != nil {
		return err
	}

	s.rewriteImages(ctx, report, records, local, false, result)

	changed := make([]models.Record, 0, len(records))
	for _, rec := range records {
		prior, ok := local[rec.Value(s.primaryKey)]
		if ok && !s.differs(rec, prior, s.smartFields) {
			result.RecordsUnchanged++
			continue
		}
		changed = append(changed, rec)
	}

	if err = s.write(ctx, report, table, changed, result); err != nil {
		return err
	}
	return s.updateMetadata(ctx, table, changed, false)
}
