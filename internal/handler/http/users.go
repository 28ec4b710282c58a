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

func (h *Handler) registerUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.registerUser").Msg("invalid JSON was passed")
		utils.WriteMessage(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	user, err := h.services.UserService.RegisterUser(ctx, request)
	if err != nil {
		writeError(w, r, err, app.MsgRegisterUserFailed)
		return
	}

	utils.WriteJSON(w, models.RegisterResponse{Message: app.MsgUserRegistered, UserID: user.ID}, http.StatusCreated)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.UserService.GetUser(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		writeError(w, r, err, app.MsgFetchUserFailed)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
