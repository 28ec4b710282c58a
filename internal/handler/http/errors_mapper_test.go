// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-postcrossing/internal/service"
	"github.com/MKhiriev/go-postcrossing/internal/store"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid id", service.ErrInvalidID, http.StatusBadRequest},
		{"invalid body", service.ErrInvalidDataProvided, http.StatusBadRequest},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"no eligible recipient", store.ErrNoEligibleRecipient, http.StatusNotFound},
		{"postcard not found", store.ErrPostcardNotFound, http.StatusNotFound},
		{"already received", store.ErrPostcardAlreadyReceived, http.StatusBadRequest},
		{"code conflict", store.ErrPostcardCodeConflict, http.StatusServiceUnavailable},
		{"wrapped not found", fmt.Errorf("lookup: %w", store.ErrUserNotFound), http.StatusNotFound},
		{"transient before low-level", fmt.Errorf("%w: %w", store.ErrExecutingQuery, store.ErrTransientFailure), http.StatusServiceUnavailable},
		{"deadline", fmt.Errorf("query: %w", context.DeadlineExceeded), http.StatusGatewayTimeout},
		{"low-level store error", store.ErrBuildingSQLQuery, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestResponseFromError_Fallback(t *testing.T) {
	resp := responseFromError(errors.New("boom"), "Error fetching user")

	assert.Equal(t, http.StatusInternalServerError, resp.status)
	assert.Equal(t, "Error fetching user", resp.message)

	resp = responseFromError(store.ErrUserNotFound, "Error fetching user")
	assert.Equal(t, "User not found", resp.message)
}
