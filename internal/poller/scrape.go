// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package poller

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	"github.com/goccy/go-json"

	"github.com/stagehaus/zoho-sync/internal/config"
	"github.com/stagehaus/zoho-sync/internal/logger"
	"github.com/stagehaus/zoho-sync/models"
)

const defaultPageTimeout = 30 * time.Second

// readyScript is truthy once the page shows either data rows or the empty
// report message.
const readyScript = `(() => {
	if (document.querySelectorAll('table tbody tr td').length > 0) return true;
	const text = (document.body && document.body.innerText || '').toLowerCase();
	return text.includes('no records');
})()`

// extractScript maps every body row to {values, images} keyed by the header
// text of the cell's column. Image cells yield data-src before src.
const extractScript = `(() => {
	const table = document.querySelector('table');
	if (!table) return [];
	let headerCells = table.querySelectorAll('thead th');
	if (headerCells.length === 0) headerCells = table.querySelectorAll('tr:first-child th');
	const headers = Array.from(headerCells).map(th => th.innerText.trim());
	return Array.from(table.querySelectorAll('tbody tr')).map(tr => {
		const row = {values: {}, images: {}};
		Array.from(tr.querySelectorAll('td')).forEach((td, i) => {
			const header = headers[i];
			if (!header) return;
			const img = td.querySelector('img');
			if (img) {
				row.images[header] = img.getAttribute('data-src') || img.getAttribute('src') || '';
				return;
			}
			row.values[header] = td.innerText.trim();
		});
		return row;
	}).filter(row => Object.keys(row.values).length > 0 || Object.keys(row.images).length > 0);
})()`

// ScrapePoller reads the published report page in a headless browser. It
// owns one browser tab that is reused across polls and must not be used
// concurrently.
type ScrapePoller struct {
	cfg        config.Poller
	headers    HeaderMap
	primaryKey string
	logger     *logger.Logger

	mu            sync.Mutex
	allocCancel   context.CancelFunc
	browserCancel context.CancelFunc
	tab           context.Context
}

// NewScrapePoller returns a poller for the permalink in cfg. Init must be
// called before the first Poll.
func NewScrapePoller(cfg config.Poller, primaryKey string, logger *logger.Logger) *ScrapePoller {
	if cfg.PageTimeout <= 0 {
		cfg.PageTimeout = defaultPageTimeout
	}
	if primaryKey == "" {
		primaryKey = models.DefaultPrimaryKey
	}
	return &ScrapePoller{
		cfg:        cfg,
		headers:    NewHeaderMap(cfg.HeaderMap).withField(primaryKey),
		primaryKey: primaryKey,
		logger:     logger,
	}
}

func (p *ScrapePoller) Name() string { return string(models.SyncTypePageScrape) }

// Init starts the browser or connects to the remote one. The session is
// detached from ctx and lives until Close.
func (p *ScrapePoller) Init(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.tab != nil {
		return nil
	}

	var allocCtx context.Context
	if p.cfg.RemoteURL != "" {
		allocCtx, p.allocCancel = chromedp.NewRemoteAllocator(context.Background(), p.cfg.RemoteURL)
	} else {
		opts := append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-first-run", true),
			chromedp.Flag("disable-extensions", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.Flag("disable-background-networking", true),
		)
		if p.cfg.NoSandbox {
			opts = append(opts, chromedp.Flag("no-sandbox", true))
		}
		allocCtx, p.allocCancel = chromedp.NewExecAllocator(context.Background(), opts...)
	}

	tab, browserCancel := chromedp.NewContext(allocCtx,
		chromedp.WithLogf(func(format string, args ...any) {
			p.logger.Debug().Str("func", "ScrapePoller").Msgf(format, args...)
		}),
	)

	startCtx, cancel := context.WithTimeout(tab, p.cfg.PageTimeout)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	err := chromedp.Run(startCtx,
		network.Enable(),
		network.SetExtraHTTPHeaders(network.Headers{"Accept-Language": "en-US,en;q=0.9"}),
	)
	if err != nil {
		browserCancel()
		p.allocCancel()
		p.allocCancel = nil
		return fmt.Errorf("start browser: %w", err)
	}

	p.tab, p.browserCancel = tab, browserCancel
	logger.FromContext(ctx).Info().
		Str("func", "ScrapePoller.Init").
		Bool("remote", p.cfg.RemoteURL != "").
		Msg("browser session started")
	return nil
}

// Poll implements [ChangePoller].
func (p *ScrapePoller) Poll(ctx context.Context) ([]models.Record, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.tab == nil {
		return nil, ErrNotInitialized
	}
	log := logger.FromContext(ctx)

	runCtx, cancel := context.WithTimeout(p.tab, p.cfg.PageTimeout)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	var ready bool
	err := chromedp.Run(runCtx,
		chromedp.Navigate(p.cfg.PermalinkURL),
		chromedp.Poll(readyScript, &ready,
			chromedp.WithPollingInterval(250*time.Millisecond),
			chromedp.WithPollingTimeout(p.cfg.PageTimeout),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPageLoad, err)
	}

	var payload []byte
	if err = chromedp.Run(runCtx, chromedp.Evaluate(extractScript, &payload)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExtraction, err)
	}

	rows, err := decodeRows(payload)
	if err != nil {
		return nil, err
	}

	records, discarded := normalizeRows(rows, p.headers, p.primaryKey)
	log.Debug().
		Str("func", "ScrapePoller.Poll").
		Int("rows", len(rows)).
		Int("records", len(records)).
		Int("discarded", discarded).
		Msg("report page scraped")

	return records, nil
}

func decodeRows(payload []byte) ([]scrapedRow, error) {
	if len(payload) == 0 {
		return nil, nil
	}
	var rows []scrapedRow
	if err := json.Unmarshal(payload, &rows); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExtraction, err)
	}
	return rows, nil
}

// Close implements [ChangePoller].
func (p *ScrapePoller) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.browserCancel != nil {
		p.browserCancel()
	}
	if p.allocCancel != nil {
		p.allocCancel()
	}
	p.tab, p.browserCancel, p.allocCancel = nil, nil, nil
	return nil
}
