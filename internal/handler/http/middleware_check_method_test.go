// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// buildRouter creates a minimal chi.Mux with a set of routes for tests.
// It does not use Handler.Init() to avoid service/logger setup.
func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Get("/api/items", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Post("/api/items", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	router.Route("/api/things", func(r chi.Router) {
		r.Get("/{thingId}", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		r.Put("/{thingId}/done", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusAccepted)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{"GET /api/items registered", http.MethodGet, "/api/items", http.StatusOK},
		{"POST /api/items registered", http.MethodPost, "/api/items", http.StatusCreated},
		{"GET parameterised route", http.MethodGet, "/api/things/42", http.StatusOK},
		{"PUT nested parameterised route", http.MethodPut, "/api/things/42/done", http.StatusAccepted},

		{"DELETE /api/items not registered", http.MethodDelete, "/api/items", http.StatusNotFound},
		{"PUT /api/items not registered", http.MethodPut, "/api/items", http.StatusNotFound},
		{"POST on parameterised route", http.MethodPost, "/api/things/42", http.StatusNotFound},
		{"GET on nested parameterised route", http.MethodGet, "/api/things/42/done", http.StatusNotFound},

		{"unknown path", http.MethodGet, "/api/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestCheckHTTPMethod_NeverAnswers405(t *testing.T) {
	router := buildRouter()

	for _, method := range []string{http.MethodDelete, http.MethodPatch, http.MethodPut, http.MethodPost} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(method, "/api/things/1", nil))

		assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code, method)
	}
}

func TestCheckHTTPMethod_ForwardsMatchingRequest(t *testing.T) {
	router := buildRouter()
	handler := CheckHTTPMethod(router)

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodPost, "/api/items", nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
}
