// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"
)

// ErrorClassification indicates whether a failed database operation may
// succeed when attempted again.
type ErrorClassification int

const (
	// NonRetryable is the default for unrecognised errors, constraint
	// violations and schema errors.
	NonRetryable ErrorClassification = iota

	// Retryable marks transient lock contention.
	Retryable
)

// SQLiteErrorClassifier maps go-sqlite3 driver errors to an [ErrorClassification].
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier].
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return NonRetryable
	}

	switch sqliteErr.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked:
		return Retryable
	}

	return NonRetryable
}

func isNoSuchTable(err error) bool {
	return err != nil && strings.Contains(err.Error(), "no such table")
}

// wrapDBError attaches the sentinel op error and, when recognised, a domain
// sentinel describing the cause.
func (db *DB) wrapDBError(op error, err error) error {
	switch {
	case isNoSuchTable(err):
		return fmt.Errorf("%w: %w: %w", op, ErrTableNotFound, err)
	case db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable:
		return fmt.Errorf("%w: %w: %w", op, ErrDatabaseBusy, err)
	}
	return fmt.Errorf("%w: %w", op, err)
}
