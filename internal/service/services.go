// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the postcard exchange:
// registration, the due-score recipient selection and the receipt flow.
// Every service is wrapped by a validation layer that rejects malformed
// input before it reaches the store.
package service

import (
	"github.com/MKhiriev/go-postcrossing/internal/config"
	"github.com/MKhiriev/go-postcrossing/internal/logger"
	"github.com/MKhiriev/go-postcrossing/internal/store"
)

type Services struct {
	UserService     UserService
	PostcardService PostcardService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, metrics DomainMetrics, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	userService := NewUserValidationService().
		Wrap(NewUserService(storages.UserRepository, storages.PostcardRepository, metrics, logger))

	postcardService := NewPostcardValidationService().
		Wrap(NewPostcardService(storages.UserRepository, storages.PostcardRepository, cfg.App, metrics, logger))

	return &Services{
		UserService:     userService,
		PostcardService: postcardService,
		AppInfoService:  appInfoService,
	}, nil
}
