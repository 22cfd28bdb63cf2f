// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package imageurl

import (
	"encoding/base64"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

const apiDownloadValue = "/api/v2/stagehaus/inventory/report/Item_Report/3887000000123/Image/download?filepath=1700000000000_chair.jpg"

func ephemeralURL(payload string) string {
	msg := base64.StdEncoding.EncodeToString([]byte(payload))
	return "https://previewengine.zoho.com/image/abc?x-cli-msg=" + url.QueryEscape(msg)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  Ref
	}{
		{
			name:  "plain text",
			value: "Oak chair",
			want:  Ref{Kind: KindNotImage, Value: "Oak chair"},
		},
		{
			name:  "empty",
			value: "",
			want:  Ref{Kind: KindNotImage},
		},
		{
			name:  "foreign url",
			value: "https://example.com/chair.jpg",
			want:  Ref{Kind: KindNotImage, Value: "https://example.com/chair.jpg"},
		},
		{
			name:  "api download path",
			value: apiDownloadValue,
			want: Ref{
				Kind:     KindAPIDownload,
				Value:    apiDownloadValue,
				Report:   "Item_Report",
				RecordID: "3887000000123",
				Field:    "Image",
				Filename: "1700000000000_chair.jpg",
			},
		},
		{
			name:  "stable url",
			value: "https://creatorexport.zoho.com/file/o/a/Item_Report/1/Image/image-download/s?filepath=/x.jpg",
			want: Ref{
				Kind:  KindResolved,
				Value: "https://creatorexport.zoho.com/file/o/a/Item_Report/1/Image/image-download/s?filepath=/x.jpg",
			},
		},
		{
			name:  "zoho image of unknown shape",
			value: "https://previewengine.zoho.com/image/thumbnail/abc",
			want: Ref{
				Kind:   KindUnresolvable,
				Value:  "https://previewengine.zoho.com/image/thumbnail/abc",
				Reason: "unknown image link shape",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.value))
		})
	}
}

func TestParse_Ephemeral(t *testing.T) {
	value := ephemeralURL(`{"recordid":"3887000000123","filepath":"/1700000000000_chair.jpg","privatelink":"perlinksecret"}`)

	ref := Parse(value)

	assert.Equal(t, KindEphemeral, ref.Kind)
	assert.Equal(t, "3887000000123", ref.RecordID)
	assert.Equal(t, "1700000000000_chair.jpg", ref.Filename)
	assert.Equal(t, "perlinksecret", ref.Secret)
	assert.Equal(t, value, ref.Value)
}

func TestParse_EphemeralCamelCaseURLAlphabet(t *testing.T) {
	payload := `{"recordId":"42","filePath":"a.png","privateLink":"k","fieldName":"Photo"}`
	value := "https://previewengine.zoho.com/image?x-cli-msg=" + base64.RawURLEncoding.EncodeToString([]byte(payload))

	ref := Parse(value)

	assert.Equal(t, KindEphemeral, ref.Kind)
	assert.Equal(t, "42", ref.RecordID)
	assert.Equal(t, "Photo", ref.Field)
}

func TestParse_EphemeralDecodeFailures(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		reason string
	}{
		{name: "bad query escape", value: "https://previewengine.zoho.com/image?x-cli-msg=%%%%", reason: "empty x-cli-msg"},
		{name: "garbage base64", value: "https://previewengine.zoho.com/image?x-cli-msg=!!notbase64!!", reason: "payload is not base64"},
		{name: "not json", value: ephemeralURL("hello"), reason: "payload is not json"},
		{name: "missing record id", value: ephemeralURL(`{"filepath":"a.jpg","privatelink":"k"}`), reason: "payload without record id"},
		{name: "missing file", value: ephemeralURL(`{"recordid":"1","privatelink":"k"}`), reason: "payload without file path"},
		{name: "missing secret", value: ephemeralURL(`{"recordid":"1","filepath":"a.jpg"}`), reason: "payload without secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := Parse(tt.value)
			assert.Equal(t, KindUnresolvable, ref.Kind)
			assert.Equal(t, tt.reason, ref.Reason)
		})
	}
}

func TestUnwrapProxyURL(t *testing.T) {
	origin := "https://creatorexport.zoho.com/file/o/a/R/1/Image/image-download/s?filepath=/x.jpg"

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "proxy", value: "https://images.example.com/proxy?url=" + url.QueryEscape(origin), want: origin},
		{name: "no url param", value: "https://images.example.com/a.jpg", want: "https://images.example.com/a.jpg"},
		{name: "relative inner", value: "https://images.example.com/proxy?url=/local.jpg", want: "https://images.example.com/proxy?url=/local.jpg"},
		{name: "not a url", value: "Oak chair", want: "Oak chair"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UnwrapProxyURL(tt.value))
		})
	}
}
