// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-postcrossing/internal/logger"
	"github.com/MKhiriev/go-postcrossing/internal/store"
	"github.com/MKhiriev/go-postcrossing/internal/utils"
	"github.com/MKhiriev/go-postcrossing/models"
)

type userService struct {
	userRepository     store.UserRepository
	postcardRepository store.PostcardRepository

	idGenerator Generator
	metrics     DomainMetrics
	now         func() time.Time

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, postcardRepository store.PostcardRepository, metrics DomainMetrics, logger *logger.Logger) UserService {
	if metrics == nil {
		metrics = noopMetrics{}
	}

	return &userService{
		userRepository:     userRepository,
		postcardRepository: postcardRepository,
		idGenerator:        utils.NewUUIDGenerator(),
		metrics:            metrics,
		now:                time.Now,
		logger:             logger,
	}
}

// RegisterUser stores a new user with a fresh id and the current time as
// date_joined. No uniqueness is enforced on username or email.
func (s *userService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	user := models.User{
		ID:         s.idGenerator.Generate(),
		Username:   request.Username,
		Email:      request.Email,
		Country:    request.Country,
		DateJoined: timestamp(s.now),
	}

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, err
	}

	s.metrics.IncrementUsersRegistered()
	log.Info().Str("func", "*userService.RegisterUser").Str("user_id", created.ID).Msg("user registered")

	return created, nil
}

// GetUser loads the user and both derived postcard lists. The list queries
// run concurrently once the user is known to exist.
func (s *userService) GetUser(ctx context.Context, userID string) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ids, listErr := s.postcardRepository.ListSentPostcardIDs(gctx, userID)
		user.SentPostcards = ids
		return listErr
	})
	g.Go(func() error {
		ids, listErr := s.postcardRepository.ListReceivedPostcardIDs(gctx, userID)
		user.ReceivedPostcards = ids
		return listErr
	})

	if err = g.Wait(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.GetUser").Str("user_id", userID).Msg("failed to load postcard lists")
		return models.User{}, err
	}

	return user, nil
}

// timestamp returns now in UTC at the precision both supported databases keep.
func timestamp(now func() time.Time) time.Time {
	return now().UTC().Truncate(time.Microsecond)
}
