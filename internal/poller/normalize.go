// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package poller

import (
	"regexp"
	"strings"

	"github.com/stagehaus/zoho-sync/internal/imageurl"
	"github.com/stagehaus/zoho-sync/models"
)

// scrapedRow is one table row as returned by the extraction script, keyed by
// visible column header.
type scrapedRow struct {
	Values map[string]string `json:"values"`
	Images map[string]string `json:"images"`
}

var (
	unitAnnotation = regexp.MustCompile(`\s*[\(\[][^\)\]]*[\)\]]\s*`)
	spaces         = regexp.MustCompile(`\s+`)
)

// headerKey reduces a visible header to its lookup form: unit annotations
// such as "(USD)" removed, whitespace collapsed, lower case.
func headerKey(header string) string {
	h := unitAnnotation.ReplaceAllString(header, " ")
	h = spaces.ReplaceAllString(strings.TrimSpace(h), " ")
	return strings.ToLower(h)
}

// HeaderMap maps visible column headers to field names.
type HeaderMap map[string]string

// NewHeaderMap builds a lookup table from configured header to field pairs.
func NewHeaderMap(pairs map[string]string) HeaderMap {
	m := make(HeaderMap, len(pairs))
	for header, field := range pairs {
		if field = strings.TrimSpace(field); field != "" {
			m[headerKey(header)] = field
		}
	}
	return m
}

// withField maps a header spelled like field to field itself unless the
// header is already mapped.
func (m HeaderMap) withField(field string) HeaderMap {
	if key := headerKey(field); key != "" {
		if _, ok := m[key]; !ok {
			m[key] = field
		}
	}
	return m
}

// Field returns the field name of a visible header.
func (m HeaderMap) Field(header string) (string, bool) {
	f, ok := m[headerKey(header)]
	return f, ok
}

// normalizeRows maps scraped rows to records. Unmapped headers are dropped
// and rows without primaryKey are discarded.
func normalizeRows(rows []scrapedRow, headers HeaderMap, primaryKey string) ([]models.Record, int) {
	records := make([]models.Record, 0, len(rows))
	discarded := 0

	for _, row := range rows {
		rec := models.Record{}
		for header, value := range row.Values {
			if field, ok := headers.Field(header); ok {
				rec.Set(field, strings.TrimSpace(value))
			}
		}
		for header, src := range row.Images {
			field, ok := headers.Field(header)
			if !ok || src == "" {
				continue
			}
			rec.Set(field, imageurl.UnwrapProxyURL(src))
		}

		if id, ok := rec.Get(primaryKey); !ok || id == "" {
			discarded++
			continue
		}
		records = append(records, rec)
	}

	return records, discarded
}
