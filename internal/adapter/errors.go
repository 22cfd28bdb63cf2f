// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	ErrTokenRefresh      = errors.New("error refreshing zoho access token")
	ErrRemoteUnavailable = errors.New("zoho api unavailable")
	ErrZohoAPI           = errors.New("zoho api error")
	ErrDecodeResponse    = errors.New("error decoding zoho response")
	ErrEmptyRecordID     = errors.New("empty record id")
	ErrEmptyReport       = errors.New("empty report name")
)
