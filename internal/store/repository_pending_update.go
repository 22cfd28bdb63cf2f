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

const pendingUpdatesTable = "pending_zoho_updates"

var pendingUpdateColumns = []string{
	"id", "record_id", "report_name", "field_name", "new_value", "old_value",
	"status", "retry_count", "error_message", "created_at", "updated_at", "synced_at",
}

// openRows matches rows still headed for the remote: syncing rows and
// pending rows below the retry ceiling. maxRetries <= 0 disables the ceiling.
func openRows(maxRetries int) sq.Sqlizer {
	pending := sq.And{sq.Eq{"status": string(models.QueueStatusPending)}}
	if maxRetries > 0 {
		pending = append(pending, sq.Lt{"retry_count": maxRetries})
	}
	return sq.Or{sq.Eq{"status": string(models.QueueStatusSyncing)}, pending}
}

type pendingUpdateRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewPendingUpdateRepository builds a [PendingUpdateRepository].
func NewPendingUpdateRepository(db *DB, log *logger.Logger) PendingUpdateRepository {
	return &pendingUpdateRepository{DB: db, logger: log, now: time.Now}
}

func (r *pendingUpdateRepository) Insert(ctx context.Context, updates []models.PendingUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	tx, err := r.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "pendingUpdateRepository.Insert").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	now := formatTime(r.now())
	for _, u := range updates {
		status := u.Status
		if status == "" {
			status = models.QueueStatusPending
		}

		query, args, err := sq.Insert(pendingUpdatesTable).
			Columns("record_id", "report_name", "field_name", "new_value", "old_value",
				"status", "retry_count", "created_at", "updated_at").
			Values(u.RecordID, u.ReportName, u.FieldName, nullable(u.NewValue), nullable(u.OldValue),
				string(status), u.RetryCount, now, now).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "pendingUpdateRepository.Insert").
				Str("record_id", u.RecordID).
				Str("field", u.FieldName).
				Msg("failed to queue update")
			return r.wrapDBError(ErrExecutingQuery, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "pendingUpdateRepository.Insert").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *pendingUpdateRepository) SelectPendingRecords(ctx context.Context, maxRetries, limit int) ([]models.PendingRecordKey, error) {
	builder := sq.Select("record_id", "report_name").
		From(pendingUpdatesTable).
		Where(sq.Eq{"status": string(models.QueueStatusPending)}).
		Where(sq.Lt{"retry_count": maxRetries}).
		GroupBy("record_id", "report_name").
		OrderBy("MIN(created_at)", "MIN(id)")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "pendingUpdateRepository.SelectPendingRecords").
			Msg("failed to select pending records")
		return nil, r.wrapDBError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	var keys []models.PendingRecordKey
	for rows.Next() {
		var key models.PendingRecordKey
		if err := rows.Scan(&key.RecordID, &key.ReportName); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return keys, nil
}

func (r *pendingUpdateRepository) ListPendingForRecord(ctx context.Context, key models.PendingRecordKey, maxRetries int) ([]models.PendingUpdate, error) {
	query, args, err := sq.Select(pendingUpdateColumns...).
		From(pendingUpdatesTable).
		Where(sq.Eq{
			"record_id":   key.RecordID,
			"report_name": key.ReportName,
			"status":      string(models.QueueStatusPending),
		}).
		Where(sq.Lt{"retry_count": maxRetries}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.wrapDBError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	var out []models.PendingUpdate
	for rows.Next() {
		u, err := scanPendingUpdate(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return out, nil
}

func scanPendingUpdate(row rowScanner) (models.PendingUpdate, error) {
	var (
		u                    models.PendingUpdate
		newVal, oldVal       sql.NullString
		status               string
		errMsg               sql.NullString
		createdAt, updatedAt string
		syncedAt             sql.NullString
	)
	if err := row.Scan(&u.ID, &u.RecordID, &u.ReportName, &u.FieldName, &newVal, &oldVal,
		&status, &u.RetryCount, &errMsg, &createdAt, &updatedAt, &syncedAt); err != nil {
		return models.PendingUpdate{}, err
	}
	u.NewValue = nullString(newVal)
	u.OldValue = nullString(oldVal)
	u.Status = models.QueueStatus(status)
	u.ErrorMessage = nullString(errMsg)
	u.CreatedAt = parseTime(createdAt)
	u.UpdatedAt = parseTime(updatedAt)
	u.SyncedAt = parseNullTime(syncedAt)
	return u, nil
}

func (r *pendingUpdateRepository) MarkSyncing(ctx context.Context, ids []int64) error {
	return r.update(ctx, "pendingUpdateRepository.MarkSyncing", ids, map[string]any{
		"status": string(models.QueueStatusSyncing),
	})
}

func (r *pendingUpdateRepository) MarkSynced(ctx context.Context, ids []int64, syncedAt time.Time) error {
	return r.update(ctx, "pendingUpdateRepository.MarkSynced", ids, map[string]any{
		"status":        string(models.QueueStatusSynced),
		"synced_at":     formatTime(syncedAt),
		"error_message": nil,
	})
}

func (r *pendingUpdateRepository) MarkFailed(ctx context.Context, ids []int64, errMsg string) error {
	return r.update(ctx, "pendingUpdateRepository.MarkFailed", ids, map[string]any{
		"status":        string(models.QueueStatusPending),
		"retry_count":   sq.Expr("retry_count + 1"),
		"error_message": errMsg,
	})
}

func (r *pendingUpdateRepository) update(ctx context.Context, funcName string, ids []int64, set map[string]any) error {
	if len(ids) == 0 {
		return nil
	}

	set["updated_at"] = formatTime(r.now())
	query, args, err := sq.Update(pendingUpdatesTable).
		SetMap(set).
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", funcName).
			Int("count", len(ids)).
			Msg("failed to update queued rows")
		return r.wrapDBError(ErrExecutingQuery, err)
	}

	return nil
}

func (r *pendingUpdateRepository) ResetSyncing(ctx context.Context) (int64, error) {
	query, args, err := sq.Update(pendingUpdatesTable).
		Set("status", string(models.QueueStatusPending)).
		Set("updated_at", formatTime(r.now())).
		Where(sq.Eq{"status": string(models.QueueStatusSyncing)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, r.wrapDBError(ErrExecutingQuery, err)
	}

	return res.RowsAffected()
}

func (r *pendingUpdateRepository) CountByStatus(ctx context.Context, maxRetries int) (models.QueueStatusCounts, error) {
	query, args, err := sq.Select("status").
		Column(sq.Expr("SUM(CASE WHEN retry_count >= ? THEN 1 ELSE 0 END)", maxRetries)).
		Column("COUNT(*)").
		From(pendingUpdatesTable).
		GroupBy("status").
		ToSql()
	if err != nil {
		return models.QueueStatusCounts{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		return models.QueueStatusCounts{}, r.wrapDBError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	var counts models.QueueStatusCounts
	for rows.Next() {
		var (
			status           string
			exhausted, total int
		)
		if err := rows.Scan(&status, &exhausted, &total); err != nil {
			return models.QueueStatusCounts{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		switch models.QueueStatus(status) {
		case models.QueueStatusPending:
			counts.Pending += total - exhausted
			counts.Failed += exhausted
		case models.QueueStatusSyncing:
			counts.Syncing += total
		case models.QueueStatusSynced:
			counts.Synced += total
		}
	}
	if err := rows.Err(); err != nil {
		return models.QueueStatusCounts{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return counts, nil
}

func (r *pendingUpdateRepository) CountOpenForRecord(ctx context.Context, recordID, report string, maxRetries int) (int, error) {
	where := sq.Eq{"record_id": recordID}
	if report != "" {
		where["report_name"] = report
	}

	query, args, err := sq.Select("COUNT(*)").
		From(pendingUpdatesTable).
		Where(where).
		Where(openRows(maxRetries)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var n int
	if err := r.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, r.wrapDBError(ErrExecutingQuery, err)
	}
	return n, nil
}

func (r *pendingUpdateRepository) OpenFieldValues(ctx context.Context, report string, recordIDs []string, maxRetries int) (map[string]models.Record, error) {
	out := make(map[string]models.Record)

	where := sq.Eq{"report_name": report}
	if len(recordIDs) > 0 {
		where["record_id"] = recordIDs
	}

	query, args, err := sq.Select("record_id", "field_name", "new_value").
		From(pendingUpdatesTable).
		Where(where).
		Where(openRows(maxRetries)).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.wrapDBError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			recordID, field string
			value           sql.NullString
		)
		if err := rows.Scan(&recordID, &field, &value); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if out[recordID] == nil {
			out[recordID] = models.Record{}
		}
		// ordered by id, so the newest queued value wins
		out[recordID][field] = nullString(value)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return out, nil
}
