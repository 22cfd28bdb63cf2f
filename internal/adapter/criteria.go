// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"strings"
	"time"
)

// criteriaTimeLayout is the date-time literal accepted in Zoho criteria
// (day without padding, abbreviated month).
const criteriaTimeLayout = "2-Jan-2006 15:04:05"

// modifiedTimeLayouts are the forms Zoho uses for Modified_Time values,
// depending on the application date settings and the raw flag.
var modifiedTimeLayouts = []string{
	"2-Jan-2006 15:04:05",
	"01/02/2006 15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// ModifiedSinceCriteria builds "<field> >= '<D-MMM-YYYY HH:MM:SS>'".
func ModifiedSinceCriteria(field string, since time.Time) string {
	return fmt.Sprintf("%s >= '%s'", field, since.Format(criteriaTimeLayout))
}

// ParseModifiedTime parses a Zoho modification marker. Values without an
// offset are read in loc.
func ParseModifiedTime(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty modification time")
	}
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range modifiedTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized modification time %q", value)
}

// startOfDay returns local midnight of t.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
