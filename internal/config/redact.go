// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

const redactedValue = "[REDACTED]"

// Redacted returns a copy of cfg that is safe to log: credentials, the JWT
// sign key and image download secrets are masked. Unset values stay empty.
func (cfg StructuredConfig) Redacted() StructuredConfig {
	out := cfg
	out.Zoho.ClientSecret = redact(cfg.Zoho.ClientSecret)
	out.Zoho.RefreshToken = redact(cfg.Zoho.RefreshToken)
	out.Auth.TokenSignKey = redact(cfg.Auth.TokenSignKey)

	if cfg.Images.FieldSecrets != nil {
		out.Images.FieldSecrets = make(map[string]string, len(cfg.Images.FieldSecrets))
		for field, secret := range cfg.Images.FieldSecrets {
			out.Images.FieldSecrets[field] = redact(secret)
		}
	}
	return out
}

func redact(s string) string {
	if s == "" {
		return ""
	}
	return redactedValue
}
