// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the postcard exchange API.
//
// [ServerAdapter] hides the transport from the command-line client. The HTTP
// implementation ([NewHTTPServerAdapter]) is built on resty and forwards the
// trace id found in the request context as X-Trace-ID.
//
// Non-2xx responses are mapped by status code to the sentinel errors in
// errors.go, so callers can use [errors.Is] (e.g. [ErrNotFound] for 404). The
// server's {"message": ...} text is kept in the error.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-postcrossing/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the postcard
// exchange server.
type ServerAdapter interface {
	// Hello calls the liveness endpoint and returns its text.
	Hello(ctx context.Context) (string, error)

	// Version returns the server's application version.
	Version(ctx context.Context) (string, error)

	// RegisterUser creates a user and returns the server's response with the
	// new user id.
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.RegisterResponse, error)

	// GetUser fetches a user with both postcard lists.
	GetUser(ctx context.Context, userID string) (models.User, error)

	// RequestAddress asks the server for the most due recipient and creates
	// a traveling postcard from senderID.
	RequestAddress(ctx context.Context, senderID string) (models.AddressResponse, error)

	// ConfirmReceipt marks the postcard as received and returns the server's
	// message.
	ConfirmReceipt(ctx context.Context, postcardID string) (string, error)

	// GetPostcard fetches a single postcard.
	GetPostcard(ctx context.Context, postcardID string) (models.Postcard, error)
}
