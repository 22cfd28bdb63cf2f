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

const syncConflictsTable = "sync_conflicts"

type syncConflictRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSyncConflictRepository builds a [SyncConflictRepository].
func NewSyncConflictRepository(db *DB, log *logger.Logger) SyncConflictRepository {
	return &syncConflictRepository{DB: db, logger: log, now: time.Now}
}

func (r *syncConflictRepository) Insert(ctx context.Context, conflicts ...models.SyncConflict) error {
	if len(conflicts) == 0 {
		return nil
	}

	builder := sq.Insert(syncConflictsTable).
		Columns("record_id", "report_name", "field_name", "local_value", "remote_value", "resolution", "created_at")
	now := r.now()
	for _, c := range conflicts {
		createdAt := c.CreatedAt
		if createdAt.IsZero() {
			createdAt = now
		}
		builder = builder.Values(c.RecordID, c.ReportName, c.FieldName,
			nullable(c.LocalValue), nullable(c.RemoteValue), c.Resolution, formatTime(createdAt))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "syncConflictRepository.Insert").
			Int("count", len(conflicts)).
			Msg("failed to write sync conflicts")
		return r.wrapDBError(ErrExecutingQuery, err)
	}

	return nil
}

func (r *syncConflictRepository) List(ctx context.Context, limit int) ([]models.SyncConflict, error) {
	builder := sq.Select("id", "record_id", "report_name", "field_name", "local_value", "remote_value", "resolution", "created_at").
		From(syncConflictsTable).
		OrderBy("id DESC")
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

	var out []models.SyncConflict
	for rows.Next() {
		var (
			c                   models.SyncConflict
			localVal, remoteVal sql.NullString
			createdAt           string
		)
		if err := rows.Scan(&c.ID, &c.RecordID, &c.ReportName, &c.FieldName, &localVal, &remoteVal, &c.Resolution, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		c.LocalValue = nullString(localVal)
		c.RemoteValue = nullString(remoteVal)
		c.CreatedAt = parseTime(createdAt)
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return out, nil
}
