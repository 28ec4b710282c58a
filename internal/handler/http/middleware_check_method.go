// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-postcrossing/internal/app"
	"github.com/MKhiriev/go-postcrossing/internal/utils"
)

// CheckHTTPMethod returns a handler meant for [chi.Mux.MethodNotAllowed].
//
// Chi answers 405 when the path exists but the method does not. This handler
// answers 404 instead, so an unsupported method looks exactly like an unknown
// route. Parameterised routes ("/api/users/{userId}") are resolved with
// [chi.Mux.Match], so the check covers them as well.
//
// If the router does have a handler for the method and path, the request is
// passed to the router unchanged.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			utils.WriteMessage(w, app.MsgNotFound, http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
