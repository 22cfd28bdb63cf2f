// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/stagehaus/zoho-sync/internal/logger"
	"github.com/stagehaus/zoho-sync/models"
)

const syncMetadataTable = "sync_metadata"

var syncMetadataColumns = []string{"table_name", "last_modified", "record_count", "updated_at"}

type syncMetadataRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSyncMetadataRepository builds a [SyncMetadataRepository].
func NewSyncMetadataRepository(db *DB, log *logger.Logger) SyncMetadataRepository {
	return &syncMetadataRepository{DB: db, logger: log, now: time.Now}
}

func (r *syncMetadataRepository) Get(ctx context.Context, table string) (models.SyncMetadata, error) {
	query, args, err := sq.Select(syncMetadataColumns...).
		From(syncMetadataTable).
		Where(sq.Eq{"table_name": table}).
		ToSql()
	if err != nil {
		return models.SyncMetadata{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	meta, err := scanMetadata(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.SyncMetadata{}, fmt.Errorf("%w: %s", ErrMetadataNotFound, table)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "syncMetadataRepository.Get").
			Str("table", table).
			Msg("failed to read sync metadata")
		return models.SyncMetadata{}, r.wrapDBError(ErrScanningRow, err)
	}

	return meta, nil
}

func (r *syncMetadataRepository) Upsert(ctx context.Context, meta models.SyncMetadata) error {
	updatedAt := meta.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = r.now()
	}

	query, args, err := sq.Insert(syncMetadataTable).
		Columns(syncMetadataColumns...).
		Values(meta.TableName, meta.LastModified, meta.RecordCount, formatTime(updatedAt)).
		Suffix("ON CONFLICT(table_name) DO UPDATE SET " +
			"last_modified = excluded.last_modified, " +
			"record_count = excluded.record_count, " +
			"updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "syncMetadataRepository.Upsert").
			Str("table", meta.TableName).
			Msg("failed to upsert sync metadata")
		return r.wrapDBError(ErrExecutingQuery, err)
	}

	return nil
}

func (r *syncMetadataRepository) List(ctx context.Context) ([]models.SyncMetadata, error) {
	query, args, err := sq.Select(syncMetadataColumns...).
		From(syncMetadataTable).
		OrderBy("table_name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.wrapDBError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	var out []models.SyncMetadata
	for rows.Next() {
		meta, err := scanMetadata(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		out = append(out, meta)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMetadata(row rowScanner) (models.SyncMetadata, error) {
	var (
		meta         models.SyncMetadata
		lastModified sql.NullString
		updatedAt    string
	)
	if err := row.Scan(&meta.TableName, &lastModified, &meta.RecordCount, &updatedAt); err != nil {
		return models.SyncMetadata{}, err
	}
	meta.LastModified = lastModified.String
	meta.UpdatedAt = parseTime(updatedAt)
	return meta, nil
}
