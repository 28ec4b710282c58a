// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriter_DefaultsToOK(t *testing.T) {
	w := newResponseWriter(httptest.NewRecorder())

	assert.Equal(t, http.StatusOK, w.status)
	assert.False(t, w.wroteHeader)
	assert.Zero(t, w.size)
}

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	w := newResponseWriter(rec)

	w.WriteHeader(http.StatusNotFound)
	w.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusNotFound, w.status)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResponseWriter_WriteAccumulatesSize(t *testing.T) {
	rec := httptest.NewRecorder()
	w := newResponseWriter(rec)

	n, err := w.Write([]byte("hello "))
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	_, err = w.Write([]byte("world"))
	require.NoError(t, err)

	assert.Equal(t, 11, w.size)
	assert.Equal(t, http.StatusOK, w.status)
	assert.True(t, w.wroteHeader)
	assert.Equal(t, "hello world", rec.Body.String())
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rec := httptest.NewRecorder()
	w := newResponseWriter(rec)

	assert.Same(t, rec, w.Unwrap())
}
