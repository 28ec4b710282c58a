// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	nethttp "net/http"

	"github.com/MKhiriev/go-postcrossing/internal/config"
	"github.com/MKhiriev/go-postcrossing/internal/handler/http"
	"github.com/MKhiriev/go-postcrossing/internal/logger"
	"github.com/MKhiriev/go-postcrossing/internal/metrics"
	"github.com/MKhiriev/go-postcrossing/internal/service"
)

type Handlers struct {
	HTTP    *http.Handler
	Metrics nethttp.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, m *metrics.Metrics, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	handlers := &Handlers{}

	// keep a nil *Metrics out of the interface
	if m != nil {
		handlers.HTTP = http.NewHandler(services, cfg, m, logger)
	} else {
		handlers.HTTP = http.NewHandler(services, cfg, nil, logger)
	}

	if cfg.MetricsAddress != "" {
		handlers.Metrics = m.Handler()
	}

	return handlers, nil
}
