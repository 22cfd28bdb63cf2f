// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package poller

import (
	"context"
	"sync"
	"time"

	"github.com/stagehaus/zoho-sync/internal/adapter"
	"github.com/stagehaus/zoho-sync/internal/logger"
	"github.com/stagehaus/zoho-sync/models"
)

// APIPoller asks the REST API for records modified since the previous poll.
type APIPoller struct {
	client adapter.ZohoClient
	report string

	mu   sync.Mutex
	last time.Time
	now  func() time.Time
}

// NewAPIPoller returns a poller for report. The first poll covers today.
func NewAPIPoller(client adapter.ZohoClient, report string) *APIPoller {
	return &APIPoller{client: client, report: report, now: time.Now}
}

func (p *APIPoller) Init(context.Context) error { return nil }

func (p *APIPoller) Close() error { return nil }

func (p *APIPoller) Name() string { return string(models.SyncTypeAPIPoll) }

// Poll implements [ChangePoller]. The cursor only advances after a
// successful call, so a failed poll is retried from the same point.
func (p *APIPoller) Poll(ctx context.Context) ([]models.Record, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	started := p.now()
	since := p.last
	if since.IsZero() {
		y, m, d := started.Date()
		since = time.Date(y, m, d, 0, 0, 0, 0, started.Location())
	}

	raw, err := p.client.GetModifiedRecordsSince(ctx, p.report, since)
	if err != nil {
		return nil, err
	}
	p.last = started

	records := make([]models.Record, 0, len(raw))
	for _, r := range raw {
		records = append(records, r.ToRecord())
	}

	logger.FromContext(ctx).Debug().
		Str("func", "APIPoller.Poll").
		Str("report", p.report).
		Time("since", since).
		Int("count", len(records)).
		Msg("polled modified records")

	return records, nil
}
