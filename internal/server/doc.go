// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the dashboard HTTP server and the background workers
// as one process, including signal handling and graceful shutdown.
package server
