// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-postcrossing/internal/app"
	"github.com/MKhiriev/go-postcrossing/internal/logger"
	"github.com/MKhiriev/go-postcrossing/internal/utils"
	"github.com/MKhiriev/go-postcrossing/models"
)

func (h *Handler) requestAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.AddressRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.requestAddress").Msg("invalid JSON was passed")
		utils.WriteMessage(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	assignment, err := h.services.PostcardService.RequestAddress(ctx, request)
	if err != nil {
		writeError(w, r, err, app.MsgRequestAddressFailed)
		return
	}

	utils.WriteJSON(w, assignment.ToResponse(app.MsgAddressAssigned), http.StatusOK)
}

func (h *Handler) confirmReceipt(w http.ResponseWriter, r *http.Request) {
	postcardID := chi.URLParam(r, "postcardId")

	if _, err := h.services.PostcardService.ConfirmReceipt(r.Context(), postcardID); err != nil {
		writeError(w, r, err, app.MsgConfirmReceiptFailed)
		return
	}

	logger.FromRequest(r).Info().Str("postcard_id", postcardID).Msg("postcard received")
	utils.WriteMessage(w, app.MsgPostcardReceived, http.StatusOK)
}

func (h *Handler) getPostcard(w http.ResponseWriter, r *http.Request) {
	postcard, err := h.services.PostcardService.GetPostcard(r.Context(), chi.URLParam(r, "postcardId"))
	if err != nil {
		writeError(w, r, err, app.MsgFetchPostcardFailed)
		return
	}

	utils.WriteJSON(w, postcard, http.StatusOK)
}
