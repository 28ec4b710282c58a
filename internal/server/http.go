// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-postcrossing/internal/logger"
)

const readHeaderTimeout = 5 * time.Second

type httpServer struct {
	name   string
	server *http.Server
	logger *logger.Logger
}

func newHTTPServer(name, address string, handler http.Handler, logger *logger.Logger) *httpServer {
	return &httpServer{
		name: name,
		server: &http.Server{
			Addr:              address,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		logger: logger,
	}
}

// listenAndServe blocks until the server stops. A graceful shutdown is not an
// error.
func (h *httpServer) listenAndServe() error {
	h.logger.Info().Str("server", h.name).Str("address", h.server.Addr).Msg("launching server")

	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s server: %w", h.name, err)
	}
	return nil
}

func (h *httpServer) shutdown(ctx context.Context) error {
	if err := h.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("%s server shutdown: %w", h.name, err)
	}

	h.logger.Info().Str("server", h.name).Msg("server stopped")
	return nil
}
