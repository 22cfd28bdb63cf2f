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

const syncIssuesTable = "sync_issues"

type syncIssueRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSyncIssueRepository builds a [SyncIssueRepository].
func NewSyncIssueRepository(db *DB, log *logger.Logger) SyncIssueRepository {
	return &syncIssueRepository{DB: db, logger: log, now: time.Now}
}

func (r *syncIssueRepository) Insert(ctx context.Context, issues ...models.SyncIssue) error {
	if len(issues) == 0 {
		return nil
	}

	builder := sq.Insert(syncIssuesTable).
		Columns("table_name", "record_id", "identifier", "reason", "created_at")
	now := r.now()
	for _, issue := range issues {
		createdAt := issue.CreatedAt
		if createdAt.IsZero() {
			createdAt = now
		}
		builder = builder.Values(issue.TableName, nullable(issue.RecordID), issue.Identifier, issue.Reason, formatTime(createdAt))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "syncIssueRepository.Insert").
			Int("count", len(issues)).
			Msg("failed to write sync issues")
		return r.wrapDBError(ErrExecutingQuery, err)
	}

	return nil
}

func (r *syncIssueRepository) List(ctx context.Context, table string, limit int) ([]models.SyncIssue, error) {
	builder := sq.Select("id", "table_name", "record_id", "identifier", "reason", "created_at").
		From(syncIssuesTable).
		OrderBy("id DESC")
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

	var out []models.SyncIssue
	for rows.Next() {
		var (
			issue     models.SyncIssue
			recordID  sql.NullString
			createdAt string
		)
		if err := rows.Scan(&issue.ID, &issue.TableName, &recordID, &issue.Identifier, &issue.Reason, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		issue.RecordID = nullString(recordID)
		issue.CreatedAt = parseTime(createdAt)
		out = append(out, issue)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return out, nil
}

func (r *syncIssueRepository) Count(ctx context.Context, table string) (int, error) {
	builder := sq.Select("COUNT(*)").From(syncIssuesTable)
	if table != "" {
		builder = builder.Where(sq.Eq{"table_name": table})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var n int
	if err := r.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, r.wrapDBError(ErrExecutingQuery, err)
	}
	return n, nil
}
