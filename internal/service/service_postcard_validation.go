// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-postcrossing/internal/validators"
	"github.com/MKhiriev/go-postcrossing/models"
)

type PostcardValidationService struct {
	inner     PostcardService
	validator validators.Validator
}

func NewPostcardValidationService() PostcardServiceWrapper {
	return &PostcardValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *PostcardValidationService) RequestAddress(ctx context.Context, request models.AddressRequest) (models.AddressAssignment, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.AddressAssignment{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err := v.validator.Validate(ctx, request.SenderID); err != nil {
		return models.AddressAssignment{}, fmt.Errorf("%w: %w", ErrInvalidID, err)
	}

	return v.inner.RequestAddress(ctx, request)
}

func (v *PostcardValidationService) ConfirmReceipt(ctx context.Context, postcardID string) (models.Postcard, error) {
	if err := v.validator.Validate(ctx, postcardID); err != nil {
		return models.Postcard{}, fmt.Errorf("%w: %w", ErrInvalidID, err)
	}

	return v.inner.ConfirmReceipt(ctx, postcardID)
}

func (v *PostcardValidationService) GetPostcard(ctx context.Context, postcardID string) (models.Postcard, error) {
	if err := v.validator.Validate(ctx, postcardID); err != nil {
		return models.Postcard{}, fmt.Errorf("%w: %w", ErrInvalidID, err)
	}

	return v.inner.GetPostcard(ctx, postcardID)
}

func (v *PostcardValidationService) Wrap(inner PostcardService) PostcardService {
	v.inner = inner
	return v
}
