// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrTableNotFound is returned when a report table has not been created yet.
	ErrTableNotFound = errors.New("report table not found")

	// ErrRecordNotFound is returned when a record with the requested primary
	// key does not exist in the report table.
	ErrRecordNotFound = errors.New("record not found")

	// ErrMetadataNotFound is returned when no sync cursor exists for a table.
	ErrMetadataNotFound = errors.New("sync metadata not found")

	// ErrInvalidIdentifier is returned when a report or field name sanitizes
	// to an empty SQL identifier.
	ErrInvalidIdentifier = errors.New("invalid sql identifier")

	// ErrDatabaseBusy is returned when SQLite reports the database as busy or
	// locked by another process.
	ErrDatabaseBusy = errors.New("database is busy")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a statement fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
