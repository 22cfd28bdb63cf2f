// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// System columns appended to every report table. They are owned exclusively
// by the sync layer and are never sent back to Zoho.
const (
	ColumnSyncedAt     = "_synced_at"
	ColumnLastModified = "_last_modified"
	ColumnSyncStatus   = "_sync_status"
)

// Values stored in the ColumnSyncStatus column.
const (
	RowStatusSynced      = "synced"
	RowStatusPendingPush = "pending_push"
)

// DefaultPrimaryKey is the Zoho-assigned record identifier field.
const DefaultPrimaryKey = "ID"

// IsSystemColumn reports whether name is one of the columns owned by the sync layer.
func IsSystemColumn(name string) bool {
	switch name {
	case ColumnSyncedAt, ColumnLastModified, ColumnSyncStatus:
		return true
	}
	return false
}

// RawRecord is a record exactly as decoded from the Zoho report API.
type RawRecord map[string]any

// Record is a report row: every field is optional text. A nil value is SQL NULL.
type Record map[string]*string

// Get returns the value of field and whether it is present and non-null.
func (r Record) Get(field string) (string, bool) {
	v, ok := r[field]
	if !ok || v == nil {
		return "", false
	}
	return *v, true
}

// Value returns the value of field or an empty string.
func (r Record) Value(field string) string {
	v, _ := r.Get(field)
	return v
}

// Set stores a non-null value.
func (r Record) Set(field, value string) {
	r[field] = &value
}

// SetNull stores an explicit NULL.
func (r Record) SetNull(field string) {
	r[field] = nil
}

// Fields returns the record's field names in a stable order.
func (r Record) Fields() []string {
	fields := make([]string, 0, len(r))
	for f := range r {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// Clone returns a deep copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		if v == nil {
			out[k] = nil
			continue
		}
		val := *v
		out[k] = &val
	}
	return out
}

// Schema is the set of field names known for a report table. It only grows.
type Schema map[string]struct{}

// NewSchema builds a schema from field names.
func NewSchema(fields ...string) Schema {
	s := make(Schema, len(fields))
	s.Add(fields...)
	return s
}

// Add inserts fields into the schema.
func (s Schema) Add(fields ...string) {
	for _, f := range fields {
		s[f] = struct{}{}
	}
}

// Has reports whether field is part of the schema.
func (s Schema) Has(field string) bool {
	_, ok := s[field]
	return ok
}

// Missing returns fields of records that are not in the schema yet, sorted.
func (s Schema) Missing(records ...Record) []string {
	seen := make(map[string]struct{})
	var missing []string
	for _, rec := range records {
		for f := range rec {
			if s.Has(f) {
				continue
			}
			if _, dup := seen[f]; dup {
				continue
			}
			seen[f] = struct{}{}
			missing = append(missing, f)
		}
	}
	sort.Strings(missing)
	return missing
}

// ToRecord converts a raw API record into a Record. Scalars become their text
// form and objects or arrays are serialized to JSON.
func (r RawRecord) ToRecord() Record {
	out := make(Record, len(r))
	for field, value := range r {
		text, ok := stringify(value)
		if !ok {
			out.SetNull(field)
			continue
		}
		out.Set(field, text)
	}
	return out
}

func stringify(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case json.Number:
		return v.String(), true
	default:
		payload, err := json.Marshal(v)
		if err != nil {
			return "", false
		}
		return strings.TrimSpace(string(payload)), true
	}
}
