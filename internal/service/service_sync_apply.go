// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/stagehaus/zoho-sync/internal/logger"
	"github.com/stagehaus/zoho-sync/internal/store"
	"github.com/stagehaus/zoho-sync/models"
)

// ApplyPolledRecords implements [SyncService]. Image links that cannot be
// resolved from the polled values are fixed by fetching the record from the
// API afterwards.
func (s *syncService) ApplyPolledRecords(ctx context.Context, report string, records []models.Record, syncType models.SyncType) (models.SyncResult, error) {
	return s.run(ctx, report, syncType, func(ctx context.Context, report, table string, result *models.SyncResult) error {
		polled := s.normalize(records)
		result.RecordsFetched = len(polled)

		local, err := s.localRows(ctx, table, polled)
		if err != nil {
			return err
		}

		changed := make([]models.Record, 0, len(polled))
		for _, rec := range polled {
			if !s.polledChange(rec, local[rec.Value(s.primaryKey)]) {
				result.RecordsUnchanged++
				continue
			}
			changed = append(changed, rec)
		}

		stats := s.rewriteImages(ctx, report, changed, local, false, result)
		if err = s.write(ctx, report, table, changed, result); err != nil {
			return err
		}

		s.resolveImages(ctx, report, table, stats.Unresolved, local, result)

		return s.updateMetadata(ctx, table, changed, false)
	})
}

// polledChange reports whether a polled record should be written. Records
// carrying a marker are compared by marker, others field by field.
func (s *syncService) polledChange(rec, local models.Record) bool {
	if local == nil {
		return true
	}
	if _, ok := rec.Get(s.modifiedField); ok {
		return !s.sameMarker(rec, local)
	}
	return s.differs(rec, local, rec.Fields())
}

// resolveImages refetches records whose image links were unresolvable and
// rewrites them with the API values taking precedence.
func (s *syncService) resolveImages(ctx context.Context, report, table string, ids []string,
	priors map[string]models.Record, result *models.SyncResult) {
	if len(ids) == 0 {
		return
	}
	log := logger.FromContext(ctx)

	fetched := make([]models.Record, 0, len(ids))
	for _, id := range ids {
		raw, err := s.client.GetRecord(ctx, report, id)
		if err != nil {
			log.Warn().
				Err(err).
				Str("func", "syncService.resolveImages").
				Str("record_id", id).
				Msg("could not fetch record to resolve image links")
			continue
		}
		fetched = append(fetched, normalizeRecord(raw.ToRecord()))
	}
	if len(fetched) == 0 {
		return
	}

	s.rewriteImages(ctx, report, fetched, priors, true, result)

	// counted once already by the polled write
	var scratch models.SyncResult
	if err := s.write(ctx, report, table, fetched, &scratch); err != nil {
		log.Err(err).
			Str("func", "syncService.resolveImages").
			Int("records", len(fetched)).
			Msg("failed to store records with resolved image links")
		return
	}
	result.Conflicts += scratch.Conflicts
	log.Debug().
		Str("func", "syncService.resolveImages").
		Int("records", scratch.RecordsSynced).
		Msg("image links resolved from api")
}

// ApplyLocalEdit implements [SyncService].
func (s *syncService) ApplyLocalEdit(ctx context.Context, report, recordID string, changes map[string]string) error {
	if strings.TrimSpace(recordID) == "" {
		return ErrEmptyRecordID
	}
	if len(changes) == 0 {
		return ErrNoChanges
	}
	table, err := s.tableName(report)
	if err != nil {
		return err
	}

	exists, err := s.reports.TableExists(ctx, table)
	if err != nil {
		return err
	}
	if !exists {
		return store.ErrTableNotFound
	}

	fields := make(models.Record, len(changes))
	for field, value := range changes {
		col, err := store.SanitizeIdentifier(field)
		if err != nil {
			return err
		}
		if col == s.primaryKey || models.IsSystemColumn(col) {
			continue
		}
		fields.Set(col, value)
	}
	if len(fields) == 0 {
		return ErrNoChanges
	}

	return s.reports.UpdateFields(ctx, table, recordID, fields, models.RowStatusPendingPush)
}
