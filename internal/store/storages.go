// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/stagehaus/zoho-sync/internal/config"
	"github.com/stagehaus/zoho-sync/internal/logger"
)

// Storages groups all repositories sharing the embedded database.
type Storages struct {
	Reports        ReportRepository
	Metadata       SyncMetadataRepository
	Logs           SyncLogRepository
	Issues         SyncIssueRepository
	PendingUpdates PendingUpdateRepository
	Conflicts      SyncConflictRepository

	db *DB
}

// NewStorages initialises the storage layer:
//  1. Opens the SQLite file specified in cfg.DB.DSN, creating it if needed.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires every repository to the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, primaryKey string, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newStorages(db, primaryKey, log)
}

func newStorages(db *DB, primaryKey string, log *logger.Logger) (*Storages, error) {
	reports, err := NewReportRepository(db, primaryKey, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		Reports:        reports,
		Metadata:       NewSyncMetadataRepository(db, log),
		Logs:           NewSyncLogRepository(db, log),
		Issues:         NewSyncIssueRepository(db, log),
		PendingUpdates: NewPendingUpdateRepository(db, log),
		Conflicts:      NewSyncConflictRepository(db, log),
		db:             db,
	}, nil
}

// Ping checks that the database is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the database connection.
func (s *Storages) Close() error {
	return s.db.Close()
}
