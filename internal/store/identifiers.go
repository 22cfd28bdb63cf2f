// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"
)

// SanitizeIdentifier maps a remote report or field name to a SQL identifier
// made of [A-Za-z0-9_]. Any other character becomes '_' and a leading digit
// is prefixed with '_'.
func SanitizeIdentifier(name string) (string, error) {
	name = strings.TrimSpace(name)

	var b strings.Builder
	b.Grow(len(name) + 1)
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	out := b.String()
	if out == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidIdentifier, name)
	}
	if out[0] >= '0' && out[0] <= '9' {
		out = "_" + out
	}

	return out, nil
}

// reservedTables are owned by migrations and cannot back a report.
var reservedTables = map[string]struct{}{
	"sync_metadata":        {},
	"sync_log":             {},
	"sync_issues":          {},
	"pending_zoho_updates": {},
	"sync_conflicts":       {},
	"goose_db_version":     {},
}

// SanitizeTableName sanitizes a report name like [SanitizeIdentifier] and
// rejects names of bookkeeping tables and SQLite internal tables.
func SanitizeTableName(report string) (string, error) {
	tbl, err := SanitizeIdentifier(report)
	if err != nil {
		return "", err
	}

	key := columnKey(tbl)
	if _, reserved := reservedTables[key]; reserved || strings.HasPrefix(key, "sqlite_") {
		return "", fmt.Errorf("%w: %q is a reserved table name", ErrInvalidIdentifier, report)
	}
	return tbl, nil
}

// columnKey is the comparison form of an identifier. SQLite matches table
// and column names case-insensitively.
func columnKey(ident string) string {
	return strings.ToLower(ident)
}

// quote wraps an already sanitized identifier in double quotes.
func quote(ident string) string {
	return `"` + ident + `"`
}
