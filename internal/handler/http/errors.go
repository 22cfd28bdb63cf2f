// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the admin auth middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not a bearer token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrTokenExpired is returned for a well-formed admin token past its exp claim.
	ErrTokenExpired = errors.New("token is expired")

	// ErrAdminDisabled is returned by admin endpoints when no token sign key
	// is configured.
	ErrAdminDisabled = errors.New("admin endpoints are disabled")
)

// Request validation errors.
var (
	ErrInvalidJSON  = errors.New("invalid JSON was passed")
	ErrInvalidLimit = errors.New("limit must be a positive integer")
)
