// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/stagehaus/zoho-sync/internal/logger"
	"github.com/stagehaus/zoho-sync/models"
)

var systemColumns = []string{
	models.ColumnSyncedAt,
	models.ColumnLastModified,
	models.ColumnSyncStatus,
}

type reportRepository struct {
	*DB
	primaryKey string
	logger     *logger.Logger
	now        func() time.Time
}

// NewReportRepository builds a [ReportRepository] whose tables are keyed by
// the sanitized primaryKey column.
func NewReportRepository(db *DB, primaryKey string, log *logger.Logger) (ReportRepository, error) {
	if primaryKey == "" {
		primaryKey = models.DefaultPrimaryKey
	}
	pk, err := SanitizeIdentifier(primaryKey)
	if err != nil {
		return nil, err
	}

	return &reportRepository{
		DB:         db,
		primaryKey: pk,
		logger:     log,
		now:        time.Now,
	}, nil
}

func (r *reportRepository) TableExists(ctx context.Context, table string) (bool, error) {
	tbl, err := SanitizeTableName(table)
	if err != nil {
		return false, err
	}
	return r.tableExists(ctx, r.DB.DB, tbl)
}

func (r *reportRepository) tableExists(ctx context.Context, q querier, tbl string) (bool, error) {
	query, args, err := sq.Select("COUNT(*)").
		From("sqlite_master").
		Where(sq.Eq{"type": "table", "name": tbl}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var n int
	if err := q.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return false, r.wrapDBError(ErrExecutingQuery, err)
	}
	return n > 0, nil
}

func (r *reportRepository) Columns(ctx context.Context, table string) ([]string, error) {
	tbl, err := SanitizeTableName(table)
	if err != nil {
		return nil, err
	}

	cols, err := r.columns(ctx, r.DB.DB, tbl)
	if err != nil {
		return nil, err
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrTableNotFound, tbl)
	}
	return cols, nil
}

func (r *reportRepository) columns(ctx context.Context, q querier, tbl string) ([]string, error) {
	rows, err := q.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", quote(tbl)))
	if err != nil {
		return nil, r.wrapDBError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	var cols []string
	for rows.Next() {
		var (
			cid     int
			name    string
			colType string
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dflt, &pk); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		cols = append(cols, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return cols, nil
}

func (r *reportRepository) EnsureTable(ctx context.Context, table string, fields []string) error {
	_, err := r.withSchemaTx(ctx, "reportRepository.EnsureTable", table, fields, nil)
	return err
}

func (r *reportRepository) EnsureColumns(ctx context.Context, table string, fields []string) ([]string, error) {
	return r.withSchemaTx(ctx, "reportRepository.EnsureColumns", table, fields, nil)
}

// withSchemaTx runs fn inside a transaction after bringing the table schema
// up to date with fields. It returns the columns that were added.
func (r *reportRepository) withSchemaTx(ctx context.Context, funcName, table string, fields []string,
	fn func(tx *sql.Tx, tbl string) error) ([]string, error) {
	log := logger.FromContext(ctx)

	tbl, err := SanitizeTableName(table)
	if err != nil {
		return nil, err
	}

	r.schemaMu.Lock()
	defer r.schemaMu.Unlock()

	tx, err := r.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", funcName).Str("table", tbl).Msg("failed to begin transaction")
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	added, err := r.ensureSchema(ctx, tx, tbl, fields)
	if err != nil {
		log.Err(err).Str("func", funcName).Str("table", tbl).Msg("failed to ensure table schema")
		return nil, err
	}

	if fn != nil {
		if err := fn(tx, tbl); err != nil {
			log.Err(err).Str("func", funcName).Str("table", tbl).Msg("statement failed, rolling back")
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", funcName).Str("table", tbl).Msg("failed to commit transaction")
		return nil, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	if len(added) > 0 {
		log.Info().Str("func", funcName).Str("table", tbl).Strs("columns", added).Msg("added columns")
	}
	return added, nil
}

// ensureSchema creates tbl or adds missing columns. Must run under schemaMu.
func (r *reportRepository) ensureSchema(ctx context.Context, q querier, tbl string, fields []string) ([]string, error) {
	wanted, err := r.sanitizeFields(fields)
	if err != nil {
		return nil, err
	}

	existing, err := r.columns(ctx, q, tbl)
	if err != nil {
		return nil, err
	}

	if len(existing) == 0 {
		defs := []string{quote(r.primaryKey) + " TEXT PRIMARY KEY"}
		for _, col := range systemColumns {
			defs = append(defs, quote(col)+" TEXT")
		}
		for _, col := range wanted {
			defs = append(defs, quote(col)+" TEXT")
		}
		query := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", quote(tbl), strings.Join(defs, ", "))
		if _, err := q.ExecContext(ctx, query); err != nil {
			return nil, r.wrapDBError(ErrExecutingQuery, err)
		}
		return wanted, nil
	}

	have := make(map[string]struct{}, len(existing))
	for _, col := range existing {
		have[columnKey(col)] = struct{}{}
	}
	var added []string
	for _, col := range wanted {
		key := columnKey(col)
		if _, ok := have[key]; ok {
			continue
		}
		query := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s TEXT", quote(tbl), quote(col))
		if _, err := q.ExecContext(ctx, query); err != nil {
			return nil, r.wrapDBError(ErrExecutingQuery, err)
		}
		have[key] = struct{}{}
		added = append(added, col)
	}

	return added, nil
}

// sanitizeFields returns the sanitized, sorted non-key and non-system column
// names for fields, de-duplicated case-insensitively. The first spelling in
// sorted order wins.
func (r *reportRepository) sanitizeFields(fields []string) ([]string, error) {
	cols := make([]string, 0, len(fields))
	for _, f := range fields {
		col, err := SanitizeIdentifier(f)
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)
	}
	sort.Strings(cols)

	seen := make(map[string]struct{}, len(cols))
	out := make([]string, 0, len(cols))
	for _, col := range cols {
		key := columnKey(col)
		if r.isKeyOrSystem(key) {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, col)
	}
	return out, nil
}

func (r *reportRepository) isKeyOrSystem(key string) bool {
	return key == columnKey(r.primaryKey) || models.IsSystemColumn(key)
}

func (r *reportRepository) UpsertRecords(ctx context.Context, table string, records []models.Record) (int, []models.SkippedRecord, error) {
	log := logger.FromContext(ctx)

	var (
		valid   []models.Record
		skipped []models.SkippedRecord
		fields  = models.NewSchema()
	)
	for i, rec := range records {
		id, ok := rec.Get(r.primaryKey)
		if !ok || strings.TrimSpace(id) == "" {
			skipped = append(skipped, models.SkippedRecord{
				Index:  i,
				Record: rec,
				Reason: "missing primary key " + r.primaryKey,
			})
			continue
		}
		valid = append(valid, rec)
		for f := range rec {
			fields.Add(f)
		}
	}

	if len(valid) == 0 {
		return 0, skipped, nil
	}

	syncedAt := formatTime(r.now())
	fieldList := make([]string, 0, len(fields))
	for f := range fields {
		fieldList = append(fieldList, f)
	}

	_, err := r.withSchemaTx(ctx, "reportRepository.UpsertRecords", table, fieldList, func(tx *sql.Tx, tbl string) error {
		for _, rec := range valid {
			query, args, err := r.buildUpsertQuery(tbl, rec, syncedAt)
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return r.wrapDBError(ErrExecutingQuery, fmt.Errorf("record %s: %w", rec.Value(r.primaryKey), err))
			}
		}
		return nil
	})
	if err != nil {
		return 0, skipped, err
	}

	log.Debug().
		Str("func", "reportRepository.UpsertRecords").
		Str("table", table).
		Int("count", len(valid)).
		Int("skipped", len(skipped)).
		Msg("upserted records")

	return len(valid), skipped, nil
}

func (r *reportRepository) buildUpsertQuery(tbl string, rec models.Record, syncedAt string) (string, []any, error) {
	fields, err := r.columnValues(rec)
	if err != nil {
		return "", nil, err
	}
	delete(fields, columnKey(models.ColumnSyncedAt))
	fields[columnKey(models.ColumnSyncedAt)] = columnValue{name: models.ColumnSyncedAt, value: syncedAt}

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	quoted := []string{quote(r.primaryKey)}
	args := []any{nullable(rec[r.primaryKey])}
	updates := make([]string, 0, len(keys))
	for _, key := range keys {
		col := quote(fields[key].name)
		quoted = append(quoted, col)
		args = append(args, fields[key].value)
		updates = append(updates, fmt.Sprintf("%s = excluded.%s", col, col))
	}

	query, args, err := sq.Insert(quote(tbl)).
		Columns(quoted...).
		Values(args...).
		Suffix(fmt.Sprintf("ON CONFLICT(%s) DO UPDATE SET %s", quote(r.primaryKey), strings.Join(updates, ", "))).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

type columnValue struct {
	name  string
	value any
}

// columnValues sanitizes the fields of rec other than the primary key and
// keys them by [columnKey]. Of fields differing only in case, the last in
// sorted order wins.
func (r *reportRepository) columnValues(rec models.Record) (map[string]columnValue, error) {
	out := make(map[string]columnValue, len(rec))
	for _, field := range rec.Fields() {
		col, err := SanitizeIdentifier(field)
		if err != nil {
			return nil, err
		}
		key := columnKey(col)
		if key == columnKey(r.primaryKey) {
			continue
		}
		out[key] = columnValue{name: col, value: nullable(rec[field])}
	}
	return out, nil
}

func (r *reportRepository) GetRecord(ctx context.Context, table, id string) (models.Record, error) {
	records, err := r.GetRecords(ctx, table, []string{id})
	if err != nil {
		return nil, err
	}
	rec, ok := records[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrRecordNotFound, table, id)
	}
	return rec, nil
}

func (r *reportRepository) GetRecords(ctx context.Context, table string, ids []string) (map[string]models.Record, error) {
	if len(ids) == 0 {
		return map[string]models.Record{}, nil
	}

	tbl, err := SanitizeTableName(table)
	if err != nil {
		return nil, err
	}

	out := make(map[string]models.Record, len(ids))
	// keep well under SQLITE_MAX_VARIABLE_NUMBER
	const chunk = 500
	for start := 0; start < len(ids); start += chunk {
		end := min(start+chunk, len(ids))
		builder := sq.Select("*").From(quote(tbl)).Where(sq.Eq{quote(r.primaryKey): ids[start:end]})
		records, err := r.selectRecords(ctx, "reportRepository.GetRecords", builder)
		if err != nil {
			return nil, err
		}
		for _, rec := range records {
			out[rec.Value(r.primaryKey)] = rec
		}
	}

	return out, nil
}

func (r *reportRepository) ListRecords(ctx context.Context, table string, limit, offset int) ([]models.Record, error) {
	tbl, err := SanitizeTableName(table)
	if err != nil {
		return nil, err
	}

	builder := sq.Select("*").From(quote(tbl)).OrderBy("rowid")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}
	if offset > 0 {
		builder = builder.Offset(uint64(offset))
	}

	return r.selectRecords(ctx, "reportRepository.ListRecords", builder)
}

func (r *reportRepository) SnapshotRecords(ctx context.Context, table string) (map[string]models.Record, error) {
	tbl, err := SanitizeTableName(table)
	if err != nil {
		return nil, err
	}

	records, err := r.selectRecords(ctx, "reportRepository.SnapshotRecords", sq.Select("*").From(quote(tbl)))
	if err != nil {
		return nil, err
	}

	out := make(map[string]models.Record, len(records))
	for _, rec := range records {
		out[rec.Value(r.primaryKey)] = rec
	}
	return out, nil
}

func (r *reportRepository) selectRecords(ctx context.Context, funcName string, builder sq.SelectBuilder) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to query records")
		return nil, r.wrapDBError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to scan records")
		return nil, err
	}
	return records, nil
}

func scanRecords(rows *sql.Rows) ([]models.Record, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	var records []models.Record
	values := make([]sql.NullString, len(cols))
	dest := make([]any, len(cols))
	for i := range values {
		dest[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		rec := make(models.Record, len(cols))
		for i, col := range cols {
			rec[col] = nullString(values[i])
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

func (r *reportRepository) CountRecords(ctx context.Context, table string) (int, error) {
	tbl, err := SanitizeTableName(table)
	if err != nil {
		return 0, err
	}

	query, args, err := sq.Select("COUNT(*)").From(quote(tbl)).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var n int
	if err := r.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, r.wrapDBError(ErrExecutingQuery, err)
	}
	return n, nil
}

func (r *reportRepository) ListIDs(ctx context.Context, table string) ([]string, error) {
	tbl, err := SanitizeTableName(table)
	if err != nil {
		return nil, err
	}

	query, args, err := sq.Select(quote(r.primaryKey)).From(quote(tbl)).OrderBy("rowid").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.wrapDBError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ids, nil
}

func (r *reportRepository) ClearTable(ctx context.Context, table string) error {
	log := logger.FromContext(ctx)

	tbl, err := SanitizeTableName(table)
	if err != nil {
		return err
	}

	query, args, err := sq.Delete(quote(tbl)).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	r.schemaMu.Lock()
	defer r.schemaMu.Unlock()

	res, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "reportRepository.ClearTable").Str("table", tbl).Msg("failed to clear table")
		return r.wrapDBError(ErrExecutingQuery, err)
	}

	n, _ := res.RowsAffected()
	log.Info().Str("func", "reportRepository.ClearTable").Str("table", tbl).Int64("count", n).Msg("cleared table")
	return nil
}

func (r *reportRepository) RestoreFields(ctx context.Context, table string, values map[string]models.Record) (int, error) {
	if len(values) == 0 {
		return 0, nil
	}

	fields := models.NewSchema()
	for _, rec := range values {
		for f := range rec {
			fields.Add(f)
		}
	}
	fieldList := make([]string, 0, len(fields))
	for f := range fields {
		fieldList = append(fieldList, f)
	}

	ids := make([]string, 0, len(values))
	for id := range values {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	restored := 0
	_, err := r.withSchemaTx(ctx, "reportRepository.RestoreFields", table, fieldList, func(tx *sql.Tx, tbl string) error {
		for _, id := range ids {
			rec := values[id]
			if len(rec) == 0 {
				continue
			}
			n, err := r.execUpdate(ctx, tx, tbl, id, rec, "")
			if err != nil {
				return err
			}
			restored += int(n)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return restored, nil
}

func (r *reportRepository) UpdateFields(ctx context.Context, table, id string, fields models.Record, status string) error {
	var affected int64
	_, err := r.withSchemaTx(ctx, "reportRepository.UpdateFields", table, fields.Fields(), func(tx *sql.Tx, tbl string) error {
		n, err := r.execUpdate(ctx, tx, tbl, id, fields, status)
		affected = n
		return err
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s/%s", ErrRecordNotFound, table, id)
	}
	return nil
}

func (r *reportRepository) SetSyncStatus(ctx context.Context, table, id, status string) error {
	tbl, err := SanitizeTableName(table)
	if err != nil {
		return err
	}

	n, err := r.execUpdate(ctx, r.DB.DB, tbl, id, nil, status)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s/%s", ErrRecordNotFound, table, id)
	}
	return nil
}

func (r *reportRepository) execUpdate(ctx context.Context, q querier, tbl, id string, fields models.Record, status string) (int64, error) {
	builder := sq.Update(quote(tbl)).Where(sq.Eq{quote(r.primaryKey): id})

	values, err := r.columnValues(fields)
	if err != nil {
		return 0, err
	}
	if status != "" {
		delete(values, columnKey(models.ColumnSyncStatus))
	}
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	set := 0
	for _, key := range keys {
		builder = builder.Set(quote(values[key].name), values[key].value)
		set++
	}
	if status != "" {
		builder = builder.Set(quote(models.ColumnSyncStatus), status)
		set++
	}
	if set == 0 {
		return 0, nil
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, r.wrapDBError(ErrExecutingQuery, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return n, nil
}
