// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-postcrossing/internal/validators"
	"github.com/MKhiriev/go-postcrossing/models"
)

type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *UserValidationService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.RegisterUser(ctx, request)
}

func (v *UserValidationService) GetUser(ctx context.Context, userID string) (models.User, error) {
	if err := v.validator.Validate(ctx, userID); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidID, err)
	}

	return v.inner.GetUser(ctx, userID)
}

func (v *UserValidationService) Wrap(inner UserService) UserService {
	v.inner = inner
	return v
}
