// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package imageurl

import (
	"context"
	"fmt"
	"net/url"

	"github.com/stagehaus/zoho-sync/internal/config"
	"github.com/stagehaus/zoho-sync/internal/logger"
	"github.com/stagehaus/zoho-sync/internal/metrics"
	"github.com/stagehaus/zoho-sync/models"
)

// Outcome is what Resolve did to a single value.
type Outcome int

const (
	OutcomeUnchanged Outcome = iota
	OutcomeConverted
	OutcomePreserved
	OutcomeSkipped
)

// RewriteStats summarizes a Rewrite call.
type RewriteStats struct {
	Converted int
	Skipped   int
	Preserved int

	// Unresolved lists record ids still holding an ephemeral or
	// unresolvable link after the rewrite, in input order.
	Unresolved []string
}

// Rewriter builds stable URLs for one Zoho application.
type Rewriter struct {
	exportHost string
	owner      string
	app        string
	primaryKey string
	secrets    map[string]string
}

// NewRewriter returns a Rewriter for the application described by zoho.
func NewRewriter(images config.Images, zoho config.Zoho, primaryKey string) *Rewriter {
	if primaryKey == "" {
		primaryKey = models.DefaultPrimaryKey
	}
	secrets := make(map[string]string, len(images.FieldSecrets))
	for field, secret := range images.FieldSecrets {
		secrets[field] = secret
	}
	return &Rewriter{
		exportHost: images.ExportHost,
		owner:      zoho.OwnerName,
		app:        zoho.AppName,
		primaryKey: primaryKey,
		secrets:    secrets,
	}
}

// StableURL renders the export URL of one image. The filename is
// query-escaped.
func (rw *Rewriter) StableURL(report, recordID, field, secret, filename string) string {
	return fmt.Sprintf("https://%s/file/%s/%s/%s/%s/%s/image-download/%s?filepath=/%s",
		rw.exportHost,
		url.PathEscape(rw.owner),
		url.PathEscape(rw.app),
		url.PathEscape(report),
		url.PathEscape(recordID),
		url.PathEscape(field),
		url.PathEscape(secret),
		url.QueryEscape(filename),
	)
}

// Resolve returns the value to store for ref given the prior local value.
// A stable prior is never replaced by an ephemeral link unless authoritative
// is set, and never replaced by an unresolvable one.
func (rw *Rewriter) Resolve(ref Ref, prior string, authoritative bool) (string, Outcome) {
	priorStable := isStableURL(prior)

	switch ref.Kind {
	case KindAPIDownload:
		secret, ok := rw.secrets[ref.Field]
		if !ok || secret == "" {
			if priorStable {
				return prior, OutcomePreserved
			}
			return ref.Value, OutcomeSkipped
		}
		return rw.StableURL(ref.Report, ref.RecordID, ref.Field, secret, ref.Filename), OutcomeConverted

	case KindEphemeral:
		if priorStable && !authoritative {
			return prior, OutcomePreserved
		}
		return rw.StableURL(ref.Report, ref.RecordID, ref.Field, ref.Secret, ref.Filename), OutcomeConverted

	case KindUnresolvable:
		if priorStable {
			return prior, OutcomePreserved
		}
		return ref.Value, OutcomeSkipped

	default:
		return ref.Value, OutcomeUnchanged
	}
}

// Rewrite converts image references of records in place. priors maps record
// ids to the rows stored before this sync.
func (rw *Rewriter) Rewrite(ctx context.Context, report string, records []models.Record, priors map[string]models.Record, authoritative bool) RewriteStats {
	log := logger.FromContext(ctx)

	var stats RewriteStats
	for _, rec := range records {
		id := rec.Value(rw.primaryKey)
		prior := priors[id]
		unresolved := false

		for _, field := range rec.Fields() {
			if field == rw.primaryKey || models.IsSystemColumn(field) {
				continue
			}
			value, ok := rec.Get(field)
			if !ok {
				continue
			}

			ref := Parse(value)
			if ref.Kind == KindNotImage {
				continue
			}
			if ref.Report == "" {
				ref.Report = report
			}
			if ref.Field == "" {
				ref.Field = field
			}
			if ref.RecordID == "" {
				ref.RecordID = id
			}

			out, outcome := rw.Resolve(ref, prior.Value(field), authoritative)
			switch outcome {
			case OutcomeUnchanged:
				if out != value {
					rec.Set(field, out)
				}
			case OutcomeConverted:
				stats.Converted++
				rec.Set(field, out)
			case OutcomePreserved:
				stats.Preserved++
				rec.Set(field, out)
			case OutcomeSkipped:
				stats.Skipped++
				if ref.Kind == KindEphemeral || ref.Kind == KindUnresolvable {
					unresolved = true
				}
				log.Debug().
					Str("func", "Rewriter.Rewrite").
					Str("report", report).
					Str("record_id", id).
					Str("field", field).
					Str("kind", ref.Kind.String()).
					Str("reason", ref.Reason).
					Msg("image link left unchanged")
			}
		}

		if unresolved && id != "" {
			stats.Unresolved = append(stats.Unresolved, id)
		}
	}

	metrics.ImagesRewritten.WithLabelValues("converted").Add(float64(stats.Converted))
	metrics.ImagesRewritten.WithLabelValues("skipped").Add(float64(stats.Skipped))
	metrics.ImagesRewritten.WithLabelValues("preserved").Add(float64(stats.Preserved))

	return stats
}
