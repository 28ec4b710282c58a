// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-postcrossing/internal/logger"
	"github.com/MKhiriev/go-postcrossing/models"
)

// userRepository is the SQL implementation of [UserRepository].
// It handles user creation, lookup and recipient selection against the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it with empty postcard
// lists.
//
// Error handling:
//   - query building failure → [ErrBuildingSQLQuery].
//   - driver error → [ErrExecutingStatement], plus [ErrTransientFailure]
//     when the driver error is retryable.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to insert user")
		return models.User{}, r.db.wrapError(ErrExecutingStatement, err)
	}

	user.SentPostcards = []string{}
	user.ReceivedPostcards = []string{}

	return user, nil
}

// FindUserByID retrieves the user with the given id. The postcard lists are
// left empty; they are loaded through [PostcardRepository].
//
// Error handling:
//   - no row → [ErrUserNotFound].
//   - driver error → [ErrExecutingQuery].
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserByIDQuery(r.db.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	err = scanUser(r.db.QueryRowContext(ctx, query, args...), &user)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().Str("func", "*userRepository.FindUserByID").Str("user_id", userID).Msg("user not found")
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Str("user_id", userID).Msg("failed to query user")
		return models.User{}, r.db.wrapError(ErrExecutingQuery, err)
	}

	return user, nil
}

// FindMostDueRecipient runs the due-score ranking in a single query and
// returns the top candidate.
//
// Error handling:
//   - no other user → [ErrNoEligibleRecipient].
//   - driver error → [ErrExecutingQuery].
func (r *userRepository) FindMostDueRecipient(ctx context.Context, senderID string) (models.Recipient, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectMostDueRecipientQuery(r.db.builder, senderID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindMostDueRecipient").Msg("failed to build query")
		return models.Recipient{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var recipient models.Recipient
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&recipient.ID,
		&recipient.Username,
		&recipient.Email,
		&recipient.Country,
		&recipient.DateJoined,
		&recipient.Score,
	)
	if errors.Is(err, sql.ErrNoRows) {
		log.Info().Str("func", "*userRepository.FindMostDueRecipient").Str("sender_id", senderID).Msg("no eligible recipient")
		return models.Recipient{}, ErrNoEligibleRecipient
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindMostDueRecipient").Str("sender_id", senderID).Msg("failed to select recipient")
		return models.Recipient{}, r.db.wrapError(ErrExecutingQuery, err)
	}

	log.Debug().
		Str("func", "*userRepository.FindMostDueRecipient").
		Str("sender_id", senderID).
		Str("recipient_id", recipient.ID).
		Int64("due_score", recipient.Score).
		Msg("recipient selected")

	return recipient, nil
}

func scanUser(row rowScanner, user *models.User) error {
	return row.Scan(&user.ID, &user.Username, &user.Email, &user.Country, &user.DateJoined)
}
