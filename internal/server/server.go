// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-postcrossing/internal/config"
	"github.com/MKhiriev/go-postcrossing/internal/handler"
	"github.com/MKhiriev/go-postcrossing/internal/logger"
)

type server struct {
	httpServer    *httpServer
	metricsServer *httpServer

	shutdownTimeout time.Duration

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	servers := &server{
		httpServer:      newHTTPServer("http", cfg.HTTPAddress, handlers.HTTP.Init(), logger),
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}

	if cfg.MetricsAddress != "" && handlers.Metrics != nil {
		servers.metricsServer = newHTTPServer("metrics", cfg.MetricsAddress, handlers.Metrics, logger)
	}

	return servers, nil
}

// RunServer serves until SIGTERM, SIGINT or SIGQUIT arrives, then shuts the
// listeners down.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
		return
	}

	s.logger.Info().Msg("server shutdown gracefully")
}

func (s *server) Shutdown() {
	if err := s.shutdown(); err != nil {
		s.logger.Err(err).Msg("error shutting down server")
	}
}

// run serves until ctx is done or a listener fails. A failing listener stops
// the other one as well.
func (s *server) run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, srv := range s.listeners() {
		g.Go(srv.listenAndServe)
	}

	g.Go(func() error {
		<-gctx.Done()
		return s.shutdown()
	})

	return g.Wait()
}

func (s *server) shutdown() error {
	ctx := context.Background()
	if s.shutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.shutdownTimeout)
		defer cancel()
	}

	var errs []error
	for _, srv := range s.listeners() {
		errs = append(errs, srv.shutdown(ctx))
	}

	return errors.Join(errs...)
}

func (s *server) listeners() []*httpServer {
	listeners := []*httpServer{s.httpServer}
	if s.metricsServer != nil {
		listeners = append(listeners, s.metricsServer)
	}
	return listeners
}
