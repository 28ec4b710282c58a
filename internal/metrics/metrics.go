// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the Prometheus collectors of the server. Collectors
// are registered on a private registry so that several instances (tests, a
// second server in one process) never clash on the default one.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "postcrossing"

// Metrics holds all Prometheus metrics for the application.
// All methods are safe to call on a nil *Metrics.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	UsersRegistered   prometheus.Counter
	PostcardsSent     prometheus.Counter
	PostcardsReceived prometheus.Counter
}

// New creates and registers all Prometheus metrics, together with the Go
// runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by route, method and status code",
		}, []string{"route", "method", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests by route and method",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"route", "method"}),
		UsersRegistered: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "users_registered_total",
			Help:      "Total number of registered users",
		}),
		PostcardsSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "postcards_sent_total",
			Help:      "Total number of postcards created by address requests",
		}),
		PostcardsReceived: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "postcards_received_total",
			Help:      "Total number of postcards confirmed as received",
		}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}

	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveHTTPRequest records one finished request. route is the matched
// route pattern, not the raw path, to keep label cardinality bounded.
func (m *Metrics) ObserveHTTPRequest(route, method string, status int, start time.Time) {
	if m == nil {
		return
	}

	m.HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
}

// IncrementUsersRegistered records a successful registration.
func (m *Metrics) IncrementUsersRegistered() {
	if m == nil {
		return
	}
	m.UsersRegistered.Inc()
}

// IncrementPostcardsSent records a postcard created by an address request.
func (m *Metrics) IncrementPostcardsSent() {
	if m == nil {
		return
	}
	m.PostcardsSent.Inc()
}

// IncrementPostcardsReceived records a confirmed receipt.
func (m *Metrics) IncrementPostcardsReceived() {
	if m == nil {
		return
	}
	m.PostcardsReceived.Inc()
}
