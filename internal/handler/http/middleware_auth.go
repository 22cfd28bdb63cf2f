// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/golang-jwt/jwt/v5"

	"github.com/stagehaus/zoho-sync/internal/logger"
	"github.com/stagehaus/zoho-sync/internal/utils"
)

// adminOnly is an HTTP middleware that guards the write endpoints of the
// dashboard (manual sync triggers, record edits, queue drains).
//
// It validates the bearer token as an HS256 JWT signed with the configured
// key and issuer, and stores its subject in the request context under
// [utils.SubjectCtxKey].
//
// Requests are rejected with:
//   - 403 Forbidden when no sign key is configured ([ErrAdminDisabled]).
//   - 401 Unauthorized when the header is absent, is not a bearer token,
//     or the token is expired or otherwise invalid.
func (h *Handler) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		if h.auth.TokenSignKey == "" {
			log.Warn().Str("func", "*Handler.adminOnly").Msg(ErrAdminDisabled.Error())
			utils.WriteError(w, ErrAdminDisabled.Error(), http.StatusForbidden)
			return
		}

		subject, err := h.authenticate(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Str("func", "*Handler.adminOnly").Msg("admin token rejected")
			utils.WriteError(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), utils.SubjectCtxKey, subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) authenticate(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	tokenString, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err)
	}

	subject, err := utils.ValidateAndParseJWTToken(tokenString, h.auth.TokenSignKey, h.auth.TokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", errors.New(http.StatusText(http.StatusUnauthorized))
	}

	return subject, nil
}
