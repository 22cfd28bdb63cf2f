// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package imageurl

import (
	"context"
	"net/url"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stagehaus/zoho-sync/internal/config"
	"github.com/stagehaus/zoho-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const stablePrior = "https://creatorexport.zoho.com/file/stagehaus/inventory/Item_Report/3887000000123/Image/image-download/oldsecret?filepath=/old.jpg"

func testContext() context.Context {
	return zerolog.Nop().WithContext(context.Background())
}

func newTestRewriter() *Rewriter {
	return NewRewriter(
		config.Images{ExportHost: "creatorexport.zoho.com", FieldSecrets: map[string]string{"Image": "fixedsecret"}},
		config.Zoho{OwnerName: "stagehaus", AppName: "inventory"},
		"ID",
	)
}

func rec(kv ...string) models.Record {
	r := models.Record{}
	for i := 0; i+1 < len(kv); i += 2 {
		r.Set(kv[i], kv[i+1])
	}
	return r
}

func TestStableURL(t *testing.T) {
	got := newTestRewriter().StableURL("Item_Report", "1", "Image", "s3cr3t", "a.jpg")
	assert.Equal(t, "https://creatorexport.zoho.com/file/stagehaus/inventory/Item_Report/1/Image/image-download/s3cr3t?filepath=/a.jpg", got)
}

func TestStableURL_EscapesFilename(t *testing.T) {
	got := newTestRewriter().StableURL("Item_Report", "1", "Image", "s3cr3t", "front & back #2.jpg")
	assert.Equal(t, "https://creatorexport.zoho.com/file/stagehaus/inventory/Item_Report/1/Image/image-download/s3cr3t?filepath=/front+%26+back+%232.jpg", got)

	u, err := url.Parse(got)
	require.NoError(t, err)
	assert.Empty(t, u.Fragment)
	assert.Equal(t, "/front & back #2.jpg", u.Query().Get("filepath"))
	assert.Len(t, u.Query(), 1)
	assert.Equal(t, KindResolved, Parse(got).Kind)
}

func TestResolve_Precedence(t *testing.T) {
	rw := newTestRewriter()
	ephemeral := Parse(ephemeralURL(`{"recordid":"3887000000123","filepath":"new.jpg","privatelink":"linksecret"}`))
	ephemeral.Report, ephemeral.Field = "Item_Report", "Image"
	fresh := "https://creatorexport.zoho.com/file/stagehaus/inventory/Item_Report/3887000000123/Image/image-download/linksecret?filepath=/new.jpg"

	tests := []struct {
		name          string
		ref           Ref
		prior         string
		authoritative bool
		want          string
		outcome       Outcome
	}{
		{name: "ephemeral without prior converts", ref: ephemeral, want: fresh, outcome: OutcomeConverted},
		{name: "ephemeral never regresses stable prior", ref: ephemeral, prior: stablePrior, want: stablePrior, outcome: OutcomePreserved},
		{name: "authoritative ephemeral replaces prior", ref: ephemeral, prior: stablePrior, authoritative: true, want: fresh, outcome: OutcomeConverted},
		{name: "unresolvable keeps stable prior", ref: Ref{Kind: KindUnresolvable, Value: "x"}, prior: stablePrior, authoritative: true, want: stablePrior, outcome: OutcomePreserved},
		{name: "unresolvable without prior skipped", ref: Ref{Kind: KindUnresolvable, Value: "x"}, want: "x", outcome: OutcomeSkipped},
		{name: "not image untouched", ref: Ref{Kind: KindNotImage, Value: "Oak"}, prior: stablePrior, want: "Oak", outcome: OutcomeUnchanged},
		{
			name:    "api download uses fixed secret",
			ref:     Parse(apiDownloadValue),
			prior:   stablePrior,
			want:    "https://creatorexport.zoho.com/file/stagehaus/inventory/Item_Report/3887000000123/Image/image-download/fixedsecret?filepath=/1700000000000_chair.jpg",
			outcome: OutcomeConverted,
		},
		{
			name:    "api download without secret keeps prior",
			ref:     Ref{Kind: KindAPIDownload, Value: "/api", Field: "Photo_2"},
			prior:   stablePrior,
			want:    stablePrior,
			outcome: OutcomePreserved,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, outcome := rw.Resolve(tt.ref, tt.prior, tt.authoritative)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.outcome, outcome)
		})
	}
}

func TestRewrite_InPlace(t *testing.T) {
	rw := newTestRewriter()
	records := []models.Record{
		rec("ID", "3887000000123", "Item_Name", "Chair", "Image", apiDownloadValue),
		rec("ID", "3887000000124", "Image", ephemeralURL(`{"recordid":"3887000000124","filepath":"b.jpg","privatelink":"k2"}`)),
		rec("ID", "3887000000125", "Image", ephemeralURL(`{"recordid":"3887000000125","filepath":"c.jpg","privatelink":"k3"}`)),
		rec("ID", "3887000000126", "Image", "https://previewengine.zoho.com/image/thumbnail/x"),
	}
	priors := map[string]models.Record{
		"3887000000125": rec("ID", "3887000000125", "Image", stablePrior),
	}

	stats := rw.Rewrite(testContext(), "Item_Report", records, priors, false)

	assert.Equal(t, 2, stats.Converted)
	assert.Equal(t, 1, stats.Preserved)
	assert.Equal(t, 1, stats.Skipped)
	assert.Equal(t, []string{"3887000000126"}, stats.Unresolved)

	assert.Equal(t, "Chair", records[0].Value("Item_Name"))
	assert.Contains(t, records[0].Value("Image"), "/image-download/fixedsecret?filepath=/1700000000000_chair.jpg")
	assert.Equal(t,
		"https://creatorexport.zoho.com/file/stagehaus/inventory/Item_Report/3887000000124/Image/image-download/k2?filepath=/b.jpg",
		records[1].Value("Image"))
	assert.Equal(t, stablePrior, records[2].Value("Image"))
	assert.Equal(t, "https://previewengine.zoho.com/image/thumbnail/x", records[3].Value("Image"))
}

func TestRewrite_IgnoresNullsAndSystemColumns(t *testing.T) {
	rw := newTestRewriter()
	r := rec("ID", "1", models.ColumnSyncStatus, apiDownloadValue)
	r.SetNull("Image")

	stats := rw.Rewrite(testContext(), "Item_Report", []models.Record{r}, nil, false)

	assert.Equal(t, RewriteStats{}, stats)
	_, ok := r.Get("Image")
	require.False(t, ok)
	assert.Equal(t, apiDownloadValue, r.Value(models.ColumnSyncStatus))
}

func TestRewrite_UnwrapsProxiedStableURL(t *testing.T) {
	rw := newTestRewriter()
	r := rec("ID", "1", "Image", "https://img.example.com/p?url=https%3A%2F%2Fcreatorexport.zoho.com%2Ffile%2Fo%2Fa%2FR%2F1%2FImage%2Fimage-download%2Fs%3Ffilepath%3D%2Fx.jpg")

	rw.Rewrite(testContext(), "R", []models.Record{r}, nil, false)

	assert.Equal(t, "https://creatorexport.zoho.com/file/o/a/R/1/Image/image-download/s?filepath=/x.jpg", r.Value("Image"))
}
