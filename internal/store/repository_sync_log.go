// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/stagehaus/zoho-sync/internal/logger"
	"github.com/stagehaus/zoho-sync/models"
)

const syncLogTable = "sync_log"

var syncLogColumns = []string{"id", "sync_type", "table_name", "status", "records_synced", "error_message", "created_at"}

type syncLogRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSyncLogRepository builds a [SyncLogRepository].
func NewSyncLogRepository(db *DB, log *logger.Logger) SyncLogRepository {
	return &syncLogRepository{DB: db, logger: log, now: time.Now}
}

func (r *syncLogRepository) Insert(ctx context.Context, entry models.SyncLogEntry) (int64, error) {
	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = r.now()
	}

	query, args, err := sq.Insert(syncLogTable).
		Columns("sync_type", "table_name", "status", "records_synced", "error_message", "created_at").
		Values(string(entry.SyncType), entry.TableName, string(entry.Status), entry.RecordsSynced,
			nullable(entry.ErrorMessage), formatTime(createdAt)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "syncLogRepository.Insert").
			Str("table", entry.TableName).
			Str("mode", string(entry.SyncType)).
			Msg("failed to write sync log entry")
		return 0, r.wrapDBError(ErrExecutingQuery, err)
	}

	return res.LastInsertId()
}

func (r *syncLogRepository) List(ctx context.Context, table string, limit int) ([]models.SyncLogEntry, error) {
	builder := sq.Select(syncLogColumns...).From(syncLogTable).OrderBy("id DESC")
	if table != "" {
		builder = builder.Where(sq.Eq{"table_name": table})
	}
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.wrapDBError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	var out []models.SyncLogEntry
	for rows.Next() {
		var (
			e         models.SyncLogEntry
			syncType  string
			status    string
			errMsg    sql.NullString
			createdAt string
		)
		if err := rows.Scan(&e.ID, &syncType, &e.TableName, &status, &e.RecordsSynced, &errMsg, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		e.SyncType = models.SyncType(syncType)
		e.Status = models.SyncStatus(status)
		e.ErrorMessage = nullString(errMsg)
		e.CreatedAt = parseTime(createdAt)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return out, nil
}
