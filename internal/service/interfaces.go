// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-postcrossing/models"
)

// UserService registers users and loads them with their postcard lists.
type UserService interface {
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error)
	GetUser(ctx context.Context, userID string) (models.User, error)
}

// PostcardService assigns recipients and tracks postcards until receipt.
type PostcardService interface {
	RequestAddress(ctx context.Context, request models.AddressRequest) (models.AddressAssignment, error)
	ConfirmReceipt(ctx context.Context, postcardID string) (models.Postcard, error)
	GetPostcard(ctx context.Context, postcardID string) (models.Postcard, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// validating.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}

// PostcardServiceWrapper defines middleware composition for PostcardService.
type PostcardServiceWrapper interface {
	Wrap(PostcardService) PostcardService
}

// DomainMetrics receives the business events of the service layer.
type DomainMetrics interface {
	IncrementUsersRegistered()
	IncrementPostcardsSent()
	IncrementPostcardsReceived()
}

type noopMetrics struct{}

func (noopMetrics) IncrementUsersRegistered()   {}
func (noopMetrics) IncrementPostcardsSent()     {}
func (noopMetrics) IncrementPostcardsReceived() {}

// Generator produces identifiers and postcard codes.
type Generator interface {
	Generate() string
}
