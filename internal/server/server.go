// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
	"os/signal"
	"sync"
	"syscall"

	"github.com/stagehaus/zoho-sync/internal/config"
	"github.com/stagehaus/zoho-sync/internal/handler"
	"github.com/stagehaus/zoho-sync/internal/logger"
	"github.com/stagehaus/zoho-sync/internal/workers"
)

type server struct {
	httpServer *httpServer
	workers    workers.Worker
	listener   net.Listener

	shutdownOnce sync.Once
	logger       *logger.Logger
}

// NewServer assembles the dashboard server and the background workers. bg
// may be nil when no workers should run.
func NewServer(handlers *handler.Handlers, bg workers.Worker, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		workers:    bg,
		logger:     logger,
	}, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

// Shutdown stops the HTTP server first so no new edits are accepted, then
// the workers.
func (s *server) Shutdown() {
	s.shutdownOnce.Do(func() {
		s.httpServer.Shutdown()
		if s.workers != nil {
			s.workers.Stop()
		}
		s.logger.Info().Msg("server Shutdown gracefully")
	})
}

func (s *server) run(ctx context.Context) error {
	ctx = logger.EnsureContext(ctx, s.logger)

	if s.workers != nil {
		if err := s.workers.Start(ctx); err != nil {
			return err
		}
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("Launching HTTP server")
		errCh <- s.httpServer.RunServer(s.listener)
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errCh:
		if runErr != nil {
			s.logger.Err(runErr).Str("func", "server.run").Msg("HTTP server stopped")
		}
	}

	s.Shutdown()
	return runErr
}
