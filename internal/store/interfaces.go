// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-postcrossing/models"
)

// UserRepository persists users and answers the recipient selection query.
type UserRepository interface {
	// CreateUser inserts user as is. ID and DateJoined are set by the caller.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByID returns the stored user without its postcard lists, or
	// [ErrUserNotFound].
	FindUserByID(ctx context.Context, userID string) (models.User, error)

	// FindMostDueRecipient returns the user other than senderID with the
	// highest due score, the lowest id winning ties, or
	// [ErrNoEligibleRecipient].
	FindMostDueRecipient(ctx context.Context, senderID string) (models.Recipient, error)
}

// PostcardRepository persists postcards and derives the per-user lists.
type PostcardRepository interface {
	// CreatePostcard inserts a traveling postcard. Returns
	// [ErrPostcardCodeConflict] on a code collision and [ErrUserNotFound] when
	// sender or receiver do not exist.
	CreatePostcard(ctx context.Context, postcard models.Postcard) (models.Postcard, error)

	// FindPostcardByID returns the postcard or [ErrPostcardNotFound].
	FindPostcardByID(ctx context.Context, postcardID string) (models.Postcard, error)

	// MarkPostcardReceived atomically moves a traveling postcard to received.
	// Returns [ErrPostcardNotFound] or [ErrPostcardAlreadyReceived] when the
	// transition is not possible.
	MarkPostcardReceived(ctx context.Context, postcardID string, receivedAt time.Time) (models.Postcard, error)

	// ListSentPostcardIDs returns ids of postcards sent by userID, oldest first.
	ListSentPostcardIDs(ctx context.Context, userID string) ([]string, error)

	// ListReceivedPostcardIDs returns ids of postcards received by userID,
	// in order of receipt.
	ListReceivedPostcardIDs(ctx context.Context, userID string) ([]string, error)
}
