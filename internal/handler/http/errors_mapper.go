// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-postcrossing/internal/app"
	"github.com/MKhiriev/go-postcrossing/internal/logger"
	"github.com/MKhiriev/go-postcrossing/internal/service"
	"github.com/MKhiriev/go-postcrossing/internal/store"
	"github.com/MKhiriev/go-postcrossing/internal/utils"
)

type errorResponse struct {
	status  int
	message string
}

// errorStatusMap lists every error with a dedicated response. Targets are
// checked in order, so the more specific errors come first: a transient
// failure is also wrapped in a low-level store error.
var errorStatusMap = []struct {
	target   error
	response errorResponse
}{
	{service.ErrInvalidID, errorResponse{http.StatusBadRequest, app.MsgInvalidID}},
	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, app.MsgMissingFields}},

	{store.ErrUserNotFound, errorResponse{http.StatusNotFound, app.MsgUserNotFound}},
	{store.ErrNoEligibleRecipient, errorResponse{http.StatusNotFound, app.MsgNoEligibleRecipient}},
	{store.ErrPostcardNotFound, errorResponse{http.StatusNotFound, app.MsgPostcardNotFound}},
	{store.ErrPostcardAlreadyReceived, errorResponse{http.StatusBadRequest, app.MsgPostcardAlreadyReceived}},

	{context.DeadlineExceeded, errorResponse{http.StatusGatewayTimeout, app.MsgRequestTimedOut}},
	{store.ErrTransientFailure, errorResponse{http.StatusServiceUnavailable, app.MsgServiceUnavailable}},
	{store.ErrPostcardCodeConflict, errorResponse{http.StatusServiceUnavailable, app.MsgServiceUnavailable}},
}

// responseFromError returns the status and message for err. Unknown errors
// are 500 with fallback as the message.
func responseFromError(err error, fallback string) errorResponse {
	for _, entry := range errorStatusMap {
		if errors.Is(err, entry.target) {
			return entry.response
		}
	}
	return errorResponse{status: http.StatusInternalServerError, message: fallback}
}

func statusFromError(err error) int {
	return responseFromError(err, "").status
}

// writeError logs err and writes the mapped {"message": ...} response.
func writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	response := responseFromError(err, fallback)

	log := logger.FromRequest(r)
	if response.status >= http.StatusInternalServerError {
		log.Err(err).Int("status", response.status).Msg(fallback)
	} else {
		log.Warn().Err(err).Int("status", response.status).Msg(response.message)
	}

	utils.WriteMessage(w, response.message, response.status)
}
