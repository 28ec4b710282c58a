// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-postcrossing/internal/config"
	"github.com/MKhiriev/go-postcrossing/internal/handler"
	handlerhttp "github.com/MKhiriev/go-postcrossing/internal/handler/http"
	"github.com/MKhiriev/go-postcrossing/internal/logger"
	"github.com/MKhiriev/go-postcrossing/internal/service"
)

// freeAddress returns a localhost address that was free a moment ago.
func freeAddress(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())
	return addr
}

func newTestHandlers(cfg config.Server) *handler.Handlers {
	return &handler.Handlers{
		HTTP: handlerhttp.NewHandler(&service.Services{}, cfg, nil, logger.Nop()),
		Metrics: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("metrics"))
		}),
	}
}

func TestNewServer_NoHTTPAddress(t *testing.T) {
	srv, err := NewServer(newTestHandlers(config.Server{}), config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, srv)
}

func TestNewServer_NilHandlers(t *testing.T) {
	_, err := NewServer(nil, config.Server{HTTPAddress: ":0"}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_MetricsListenerOptional(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0"}

	srv, err := NewServer(newTestHandlers(cfg), cfg, logger.Nop())
	require.NoError(t, err)
	assert.Nil(t, srv.(*server).metricsServer)
	assert.Len(t, srv.(*server).listeners(), 1)

	cfg.MetricsAddress = "127.0.0.1:0"
	srv, err = NewServer(newTestHandlers(cfg), cfg, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, srv.(*server).metricsServer)
	assert.Len(t, srv.(*server).listeners(), 2)
}

func TestServer_RunServesUntilCancelled(t *testing.T) {
	cfg := config.Server{
		HTTPAddress:     freeAddress(t),
		MetricsAddress:  freeAddress(t),
		ShutdownTimeout: time.Second,
	}

	srv, err := NewServer(newTestHandlers(cfg), cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.(*server).run(ctx) }()

	get := func(addr, path string) (int, string) {
		var resp *http.Response
		require.Eventually(t, func() bool {
			var getErr error
			resp, getErr = http.Get(fmt.Sprintf("http://%s%s", addr, path))
			return getErr == nil
		}, 2*time.Second, 20*time.Millisecond)
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return resp.StatusCode, string(body)
	}

	status, body := get(cfg.HTTPAddress, "/hello")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Hello, the server is working!", body)

	status, body = get(cfg.MetricsAddress, "/metrics")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "metrics", body)

	cancel()

	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_RunReturnsListenError(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	cfg := config.Server{HTTPAddress: busy.Addr().String(), ShutdownTimeout: time.Second}
	srv, err := NewServer(newTestHandlers(cfg), cfg, logger.Nop())
	require.NoError(t, err)

	err = srv.(*server).run(context.Background())
	assert.ErrorContains(t, err, "http server")
}
