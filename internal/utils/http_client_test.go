// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Settings(t *testing.T) {
	client := NewHTTPClient("https://creator.zoho.com/api/v2", 5*time.Second)

	require.NotNil(t, client.Client)
	assert.Equal(t, "https://creator.zoho.com/api/v2", client.BaseURL)
	assert.Equal(t, 5*time.Second, client.GetClient().Timeout)
	assert.Equal(t, UserAgent, client.Header.Get("User-Agent"))
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("https://a.example.com", 0)
	client2 := NewHTTPClient("https://b.example.com", 0)

	assert.NotSame(t, client1.Client, client2.Client)
}

func TestHTTPClient_DecodesJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, UserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":3000,"data":[{"ID":"1"}]}`))
	}))
	defer srv.Close()

	var body struct {
		Code int                 `json:"code"`
		Data []map[string]string `json:"data"`
	}
	resp, err := NewHTTPClient(srv.URL, time.Second).R().SetResult(&body).Get("/report")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, 3000, body.Code)
	assert.Equal(t, "1", body.Data[0]["ID"])
}
