// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestRedacted(t *testing.T) {
	cfg := validConfig()
	cfg.Auth.TokenSignKey = "sign-key"
	cfg.Images.FieldSecrets = map[string]string{"Image": "img-secret", "Thumb": ""}

	got := cfg.Redacted()

	assert.Equal(t, redactedValue, got.Zoho.ClientSecret)
	assert.Equal(t, redactedValue, got.Zoho.RefreshToken)
	assert.Equal(t, redactedValue, got.Auth.TokenSignKey)
	assert.Equal(t, map[string]string{"Image": redactedValue, "Thumb": ""}, got.Images.FieldSecrets)

	assert.Equal(t, "cid", got.Zoho.ClientID)
	assert.Equal(t, "stagehaus", got.Zoho.OwnerName)
	assert.Equal(t, cfg.Storage, got.Storage)
	assert.Equal(t, cfg.Server, got.Server)

	// the original is left intact
	assert.Equal(t, "secret", cfg.Zoho.ClientSecret)
	assert.Equal(t, "img-secret", cfg.Images.FieldSecrets["Image"])
}

func TestRedacted_EmptySecretsStayEmpty(t *testing.T) {
	got := StructuredConfig{}.Redacted()

	assert.Empty(t, got.Zoho.ClientSecret)
	assert.Empty(t, got.Auth.TokenSignKey)
	assert.Nil(t, got.Images.FieldSecrets)
}

func TestRedacted_LoggedConfigHasNoSecrets(t *testing.T) {
	cfg := validConfig()
	cfg.Auth.TokenSignKey = "sign-key"
	cfg.Images.FieldSecrets = map[string]string{"Image": "img-secret"}

	var buf bytes.Buffer
	log := zerolog.New(&buf)
	log.Info().Any("config", cfg.Redacted()).Msg("received configs")

	out := buf.String()
	for _, secret := range []string{"secret\"", "refresh", "sign-key", "img-secret"} {
		assert.NotContains(t, out, secret)
	}
	assert.Contains(t, out, "stagehaus")
}
