// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the sync dashboard API.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as request tracing, access logging, admin authentication and
// rate limiting of manual sync triggers are handled in this package before
// requests are delegated to the service layer. Handlers stay thin: decode,
// validate, call one service method, map the error to a status.
package http
