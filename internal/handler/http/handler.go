// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-postcrossing/internal/config"
	"github.com/MKhiriev/go-postcrossing/internal/logger"
	"github.com/MKhiriev/go-postcrossing/internal/service"
)

// RequestObserver records every routed request.
type RequestObserver interface {
	ObserveHTTPRequest(route, method string, status int, start time.Time)
}

type noopObserver struct{}

func (noopObserver) ObserveHTTPRequest(string, string, int, time.Time) {}

type Handler struct {
	services *service.Services
	metrics  RequestObserver

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, metrics RequestObserver, logger *logger.Logger) *Handler {
	if metrics == nil {
		metrics = noopObserver{}
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        metrics,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
