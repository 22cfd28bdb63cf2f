// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"github.com/sony/gobreaker/v2"
	"github.com/stagehaus/zoho-sync/internal/config"
	"github.com/stagehaus/zoho-sync/internal/logger"
	"github.com/stagehaus/zoho-sync/internal/metrics"
	"github.com/stagehaus/zoho-sync/internal/utils"
	"github.com/stagehaus/zoho-sync/models"
	"golang.org/x/time/rate"
)

const (
	breakerName = "zoho-api"

	maxPageSize     = 200
	defaultPageSize = 200

	opGetReportData = "get_report_data"
	opListReports   = "list_reports"
	opUpdateRecord  = "update_record"
	opGetRecord     = "get_record"
)

// fallbackReports is offered by ListAllReports when discovery fails and no
// report is configured.
var fallbackReports = []models.ReportInfo{
	{LinkName: "Item_Report", DisplayName: "Item Report"},
}

type zohoClient struct {
	api      *utils.HTTPClient
	accounts *utils.HTTPClient

	cfg           config.Zoho
	modifiedField string
	pageSize      int
	fallback      []models.ReportInfo

	tokens    *TokenCache
	refreshMu sync.Mutex

	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker[*resty.Response]

	reportsMu      sync.Mutex
	reports        []models.ReportInfo
	reportsFetched time.Time

	now    func() time.Time
	logger *logger.Logger
}

// NewZohoClient constructs the resty implementation of [ZohoClient].
// It validates both base URLs, sizes the call budget from
// zohoCfg.RateLimitPerMinute and uses syncCfg for the modification field
// and the fallback report list.
//
// Returns an error if either base URL is empty or cannot be parsed.
func NewZohoClient(zohoCfg config.Zoho, syncCfg config.Sync, log *logger.Logger) (ZohoClient, error) {
	apiBaseURL, err := normalizeBaseURL(zohoCfg.APIBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid zoho api base url: %w", err)
	}
	accountsURL, err := normalizeBaseURL(zohoCfg.AccountsURL)
	if err != nil {
		return nil, fmt.Errorf("invalid zoho accounts url: %w", err)
	}

	api := utils.NewHTTPClient(apiBaseURL, zohoCfg.RequestTimeout)
	accounts := utils.NewHTTPClient(accountsURL, zohoCfg.RequestTimeout)

	perMinute := zohoCfg.RateLimitPerMinute
	if perMinute <= 0 {
		perMinute = 60
	}
	pageSize := zohoCfg.PageSize
	if pageSize <= 0 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}
	modifiedField := syncCfg.ModifiedField
	if modifiedField == "" {
		modifiedField = "Modified_Time"
	}

	fallback := fallbackReports
	if len(syncCfg.Reports) > 0 {
		fallback = make([]models.ReportInfo, 0, len(syncCfg.Reports))
		for _, name := range syncCfg.Reports {
			fallback = append(fallback, models.ReportInfo{LinkName: name, DisplayName: strings.ReplaceAll(name, "_", " ")})
		}
	}

	client := &zohoClient{
		api:           api,
		accounts:      accounts,
		cfg:           zohoCfg,
		modifiedField: modifiedField,
		pageSize:      pageSize,
		fallback:      fallback,
		tokens:        NewTokenCache(),
		limiter:       rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute),
		now:           time.Now,
		logger:        log,
	}
	client.breaker = newBreaker(log)

	return client, nil
}

func newBreaker(log *logger.Logger) *gobreaker.CircuitBreaker[*resty.Response] {
	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)

	return gobreaker.NewCircuitBreaker[*resty.Response](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			return err == nil || isCallerFault(err) || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().
				Str("func", "zohoClient.breaker").
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state changed")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(float64(to))
		},
	})
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	Error       string `json:"error"`
}

// GetAccessToken implements [ZohoClient]. Concurrent callers that miss the
// cache share a single refresh.
func (z *zohoClient) GetAccessToken(ctx context.Context) (string, error) {
	if token, ok := z.tokens.Get(); ok {
		return token, nil
	}

	z.refreshMu.Lock()
	defer z.refreshMu.Unlock()

	if token, ok := z.tokens.Get(); ok {
		return token, nil
	}

	resp, err := z.accounts.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"refresh_token": z.cfg.RefreshToken,
			"client_id":     z.cfg.ClientID,
			"client_secret": z.cfg.ClientSecret,
			"grant_type":    "refresh_token",
		}).
		Post("/oauth/v2/token")
	if err != nil {
		metrics.TokenRefreshes.WithLabelValues("error").Inc()
		return "", fmt.Errorf("%w: %w", ErrTokenRefresh, err)
	}
	if err = mapHTTPError(resp); err != nil {
		metrics.TokenRefreshes.WithLabelValues("error").Inc()
		return "", fmt.Errorf("%w: %w", ErrTokenRefresh, err)
	}

	var payload tokenResponse
	if err = json.Unmarshal(resp.Body(), &payload); err != nil {
		metrics.TokenRefreshes.WithLabelValues("error").Inc()
		return "", fmt.Errorf("%w: %w: %w", ErrTokenRefresh, ErrDecodeResponse, err)
	}
	if payload.Error != "" {
		metrics.TokenRefreshes.WithLabelValues("error").Inc()
		return "", fmt.Errorf("%w: %s", ErrTokenRefresh, payload.Error)
	}
	if payload.AccessToken == "" {
		metrics.TokenRefreshes.WithLabelValues("error").Inc()
		return "", fmt.Errorf("%w: empty access token", ErrTokenRefresh)
	}

	lifetime := time.Duration(payload.ExpiresIn) * time.Second
	z.tokens.Set(payload.AccessToken, lifetime)
	metrics.TokenRefreshes.WithLabelValues("success").Inc()

	z.logger.Debug().
		Str("func", "zohoClient.GetAccessToken").
		Time("expires_at", z.tokens.ExpiresAt()).
		Msg("access token refreshed")

	return payload.AccessToken, nil
}

// execute spends one unit of the call budget, attaches the bearer token and
// runs the request through the circuit breaker. A 2xx response is returned
// as is; a Zoho "no records" body is returned with a nil error whatever its
// status code.
func (z *zohoClient) execute(ctx context.Context, operation string, send func(req *resty.Request) (*resty.Response, error)) (*resty.Response, error) {
	start := z.now()

	token, err := z.GetAccessToken(ctx)
	if err != nil {
		metrics.ObserveAPICall(operation, "error", z.now().Sub(start))
		return nil, err
	}

	if err = z.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for api budget: %w", err)
	}

	resp, err := z.breaker.Execute(func() (*resty.Response, error) {
		req := z.api.R().
			SetContext(ctx).
			SetHeader("Authorization", "Zoho-oauthtoken "+token).
			SetHeader("Accept", "application/json").
			SetPathParams(map[string]string{
				"owner": z.cfg.OwnerName,
				"app":   z.cfg.AppName,
			})

		resp, err := send(req)
		if err != nil {
			return nil, fmt.Errorf("%s request: %w", operation, err)
		}
		if isNoRecords(resp) {
			return resp, nil
		}
		if err = mapHTTPError(resp); err != nil {
			return resp, err
		}
		return resp, nil
	})

	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.ObserveAPICall(operation, "rejected", z.now().Sub(start))
		return nil, fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	case err != nil:
		if errors.Is(err, ErrUnauthorized) {
			z.tokens.Invalidate()
		}
		metrics.ObserveAPICall(operation, "error", z.now().Sub(start))
		return nil, err
	}

	metrics.ObserveAPICall(operation, "success", z.now().Sub(start))
	return resp, nil
}

type zohoEnvelope struct {
	Code        int             `json:"code"`
	Message     string          `json:"message"`
	Description string          `json:"description"`
	Data        json.RawMessage `json:"data"`
	Info        struct {
		Count int `json:"count"`
	} `json:"info"`
	Reports []zohoReport `json:"reports"`
}

type zohoReport struct {
	LinkName    string `json:"link_name"`
	DisplayName string `json:"display_name"`
	Type        any    `json:"type"`
}

func (e zohoEnvelope) text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Description
}

func decodeEnvelope(body []byte) (zohoEnvelope, error) {
	var env zohoEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return zohoEnvelope{}, fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}
	if err := mapZohoCode(env.Code, env.text()); err != nil {
		return zohoEnvelope{}, err
	}
	return env, nil
}

func isNoRecords(resp *resty.Response) bool {
	if resp.StatusCode() != http.StatusOK && resp.StatusCode() != http.StatusNotFound {
		return false
	}
	var env struct {
		Code int `json:"code"`
	}
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return false
	}
	return env.Code == zohoCodeNoRecords
}

// decodeData decodes the "data" member keeping numbers exact.
func decodeData(raw json.RawMessage, dst any) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}
	return nil
}

// GetReportData implements [ZohoClient].
func (z *zohoClient) GetReportData(ctx context.Context, report, criteria string, page, pageSize int) (models.ReportPage, error) {
	if report == "" {
		return models.ReportPage{}, ErrEmptyReport
	}
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 || pageSize > maxPageSize {
		pageSize = z.pageSize
	}

	params := map[string]string{
		"raw":   "true",
		"from":  strconv.Itoa((page-1)*pageSize + 1),
		"limit": strconv.Itoa(pageSize),
	}
	if criteria != "" {
		params["criteria"] = criteria
	}

	resp, err := z.execute(ctx, opGetReportData, func(req *resty.Request) (*resty.Response, error) {
		return req.
			SetPathParam("report", report).
			SetQueryParams(params).
			Get("/{owner}/{app}/report/{report}")
	})
	if err != nil {
		return models.ReportPage{}, err
	}

	env, err := decodeEnvelope(resp.Body())
	if err != nil {
		return models.ReportPage{}, err
	}
	if env.Code == zohoCodeNoRecords {
		return models.ReportPage{}, nil
	}

	var records []models.RawRecord
	if err = decodeData(env.Data, &records); err != nil {
		return models.ReportPage{}, err
	}

	count := env.Info.Count
	if count == 0 {
		count = (page-1)*pageSize + len(records)
	}

	return models.ReportPage{
		Records: records,
		HasMore: len(records) == pageSize,
		Count:   count,
	}, nil
}

// GetAllReportData implements [ZohoClient].
func (z *zohoClient) GetAllReportData(ctx context.Context, report, criteria string) ([]models.RawRecord, error) {
	log := logger.FromContext(ctx)

	var all []models.RawRecord
	for page := 1; ; page++ {
		result, err := z.GetReportData(ctx, report, criteria, page, z.pageSize)
		if err != nil {
			log.Err(err).
				Str("func", "zohoClient.GetAllReportData").
				Str("report", report).
				Int("page", page).
				Msg("error fetching report page")
			return nil, err
		}

		all = append(all, result.Records...)
		log.Debug().
			Str("func", "zohoClient.GetAllReportData").
			Str("report", report).
			Int("page", page).
			Int("count", len(result.Records)).
			Int("total", len(all)).
			Msg("fetched report page")

		if !result.HasMore || len(result.Records) == 0 {
			return all, nil
		}
	}
}

// GetTodayModifiedRecords implements [ZohoClient].
func (z *zohoClient) GetTodayModifiedRecords(ctx context.Context, report string) ([]models.RawRecord, error) {
	return z.GetModifiedRecordsSince(ctx, report, startOfDay(z.now()))
}

// GetModifiedRecordsSince implements [ZohoClient].
func (z *zohoClient) GetModifiedRecordsSince(ctx context.Context, report string, since time.Time) ([]models.RawRecord, error) {
	return z.GetAllReportData(ctx, report, ModifiedSinceCriteria(z.modifiedField, since))
}

// GetReportTotalCount implements [ZohoClient].
func (z *zohoClient) GetReportTotalCount(ctx context.Context, report string) (int, error) {
	total := 0
	for page := 1; ; page++ {
		result, err := z.GetReportData(ctx, report, "", page, z.pageSize)
		if err != nil {
			return 0, err
		}
		total += len(result.Records)
		if !result.HasMore || len(result.Records) == 0 {
			return total, nil
		}
	}
}

// ListAllReports implements [ZohoClient]. A successful discovery is reused
// for ReportsCacheTTL.
func (z *zohoClient) ListAllReports(ctx context.Context) ([]models.ReportInfo, error) {
	z.reportsMu.Lock()
	defer z.reportsMu.Unlock()

	if z.reports != nil && z.now().Sub(z.reportsFetched) < z.cfg.ReportsCacheTTL {
		return cloneReports(z.reports), nil
	}

	reports, err := z.fetchReports(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn().
			Err(err).
			Str("func", "zohoClient.ListAllReports").
			Int("fallback", len(z.fallback)).
			Msg("report discovery failed, using fallback list")
		return cloneReports(z.fallback), nil
	}

	z.reports = reports
	z.reportsFetched = z.now()
	return cloneReports(reports), nil
}

func (z *zohoClient) fetchReports(ctx context.Context) ([]models.ReportInfo, error) {
	resp, err := z.execute(ctx, opListReports, func(req *resty.Request) (*resty.Response, error) {
		return req.Get("/{owner}/{app}/reports")
	})
	if err != nil {
		return nil, err
	}

	env, err := decodeEnvelope(resp.Body())
	if err != nil {
		return nil, err
	}

	reports := make([]models.ReportInfo, 0, len(env.Reports))
	for _, r := range env.Reports {
		if r.LinkName == "" {
			continue
		}
		info := models.ReportInfo{LinkName: r.LinkName, DisplayName: r.DisplayName}
		if r.Type != nil {
			info.Type = fmt.Sprint(r.Type)
		}
		reports = append(reports, info)
	}
	return reports, nil
}

func cloneReports(in []models.ReportInfo) []models.ReportInfo {
	out := make([]models.ReportInfo, len(in))
	copy(out, in)
	return out
}

// UpdateRecord implements [ZohoClient].
func (z *zohoClient) UpdateRecord(ctx context.Context, report, recordID string, fields models.Record) error {
	if report == "" {
		return ErrEmptyReport
	}
	if recordID == "" {
		return ErrEmptyRecordID
	}

	resp, err := z.execute(ctx, opUpdateRecord, func(req *resty.Request) (*resty.Response, error) {
		return req.
			SetPathParam("report", report).
			SetPathParam("id", recordID).
			SetHeader("Content-Type", "application/json").
			SetBody(map[string]any{"data": fields}).
			Patch("/{owner}/{app}/report/{report}/{id}")
	})
	if err != nil {
		return err
	}

	env, err := decodeEnvelope(resp.Body())
	if err != nil {
		return err
	}
	if env.Code == zohoCodeNoRecords {
		return fmt.Errorf("%w: record %s in %s", ErrNotFound, recordID, report)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "zohoClient.UpdateRecord").
		Str("report", report).
		Str("record_id", recordID).
		Int("count", len(fields)).
		Msg("record updated")

	return nil
}

// GetRecord implements [ZohoClient].
func (z *zohoClient) GetRecord(ctx context.Context, report, recordID string) (models.RawRecord, error) {
	if report == "" {
		return nil, ErrEmptyReport
	}
	if recordID == "" {
		return nil, ErrEmptyRecordID
	}

	resp, err := z.execute(ctx, opGetRecord, func(req *resty.Request) (*resty.Response, error) {
		return req.
			SetPathParam("report", report).
			SetPathParam("id", recordID).
			SetQueryParam("raw", "true").
			Get("/{owner}/{app}/report/{report}/{id}")
	})
	if err != nil {
		return nil, err
	}

	env, err := decodeEnvelope(resp.Body())
	if err != nil {
		return nil, err
	}
	if env.Code == zohoCodeNoRecords {
		return nil, fmt.Errorf("%w: record %s in %s", ErrNotFound, recordID, report)
	}

	var record models.RawRecord
	if err = decodeData(env.Data, &record); err != nil {
		return nil, err
	}
	if record == nil {
		return nil, fmt.Errorf("%w: record %s in %s", ErrNotFound, recordID, report)
	}
	return record, nil
}
