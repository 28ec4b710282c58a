// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-postcrossing/internal/config"
	"github.com/MKhiriev/go-postcrossing/internal/logger"
	"github.com/MKhiriev/go-postcrossing/internal/store"
	"github.com/MKhiriev/go-postcrossing/internal/utils"
	"github.com/MKhiriev/go-postcrossing/models"
)

// maxCodeAttempts bounds the retries on a postcard code collision.
const maxCodeAttempts = 3

type postcardService struct {
	userRepository     store.UserRepository
	postcardRepository store.PostcardRepository

	idGenerator      Generator
	codeGenerator    Generator
	recipientAddress string
	metrics          DomainMetrics
	now              func() time.Time

	logger *logger.Logger
}

func NewPostcardService(userRepository store.UserRepository, postcardRepository store.PostcardRepository, cfg config.App, metrics DomainMetrics, logger *logger.Logger) PostcardService {
	address := cfg.RecipientAddress
	if address == "" {
		address = config.DefaultRecipientAddress
	}

	if metrics == nil {
		metrics = noopMetrics{}
	}

	return &postcardService{
		userRepository:     userRepository,
		postcardRepository: postcardRepository,
		idGenerator:        utils.NewUUIDGenerator(),
		codeGenerator:      utils.NewPostcardCodeGenerator(),
		recipientAddress:   address,
		metrics:            metrics,
		now:                time.Now,
		logger:             logger,
	}
}

// RequestAddress picks the most due user other than the sender and creates a
// traveling postcard from the sender to that user.
//
// Errors:
//   - [store.ErrUserNotFound] if the sender does not exist.
//   - [store.ErrNoEligibleRecipient] if the sender is the only user.
//   - [store.ErrPostcardCodeConflict] if every generated code collided.
func (s *postcardService) RequestAddress(ctx context.Context, request models.AddressRequest) (models.AddressAssignment, error) {
	log := logger.FromContext(ctx)

	if _, err := s.userRepository.FindUserByID(ctx, request.SenderID); err != nil {
		return models.AddressAssignment{}, err
	}

	recipient, err := s.userRepository.FindMostDueRecipient(ctx, request.SenderID)
	if err != nil {
		return models.AddressAssignment{}, err
	}

	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		postcard := models.Postcard{
			ID:         s.idGenerator.Generate(),
			Code:       s.codeGenerator.Generate(),
			SenderID:   request.SenderID,
			ReceiverID: recipient.ID,
			Status:     models.PostcardTraveling,
			SentAt:     timestamp(s.now),
		}

		created, createErr := s.postcardRepository.CreatePostcard(ctx, postcard)
		if errors.Is(createErr, store.ErrPostcardCodeConflict) {
			log.Warn().
				Str("func", "*postcardService.RequestAddress").
				Int("attempt", attempt).
				Str("postcard_code", postcard.Code).
				Msg("postcard code collision, generating a new one")
			continue
		}
		if createErr != nil {
			return models.AddressAssignment{}, createErr
		}

		s.metrics.IncrementPostcardsSent()
		log.Info().
			Str("func", "*postcardService.RequestAddress").
			Str("sender_id", created.SenderID).
			Str("receiver_id", created.ReceiverID).
			Int64("due_score", recipient.Score).
			Str("postcard_id", created.ID).
			Msg("address assigned")

		return models.AddressAssignment{
			Recipient: recipient,
			Address:   s.recipientAddress,
			Postcard:  created,
		}, nil
	}

	return models.AddressAssignment{}, fmt.Errorf("%w: gave up after %d attempts", store.ErrPostcardCodeConflict, maxCodeAttempts)
}

// ConfirmReceipt marks a traveling postcard as received now. A second
// confirmation fails with [store.ErrPostcardAlreadyReceived] and changes
// nothing.
func (s *postcardService) ConfirmReceipt(ctx context.Context, postcardID string) (models.Postcard, error) {
	postcard, err := s.postcardRepository.MarkPostcardReceived(ctx, postcardID, timestamp(s.now))
	if err != nil {
		return models.Postcard{}, err
	}

	s.metrics.IncrementPostcardsReceived()

	return postcard, nil
}

func (s *postcardService) GetPostcard(ctx context.Context, postcardID string) (models.Postcard, error) {
	return s.postcardRepository.FindPostcardByID(ctx, postcardID)
}
