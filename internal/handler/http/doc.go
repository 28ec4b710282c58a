// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST API of the postcard exchange.
//
// It wires the chi router, the request handlers and the middleware chain:
// request tracing, access logging, request metrics, gzip and CORS. Handlers
// decode the request, call the service layer and translate service and store
// errors into status codes through a single table.
package http
