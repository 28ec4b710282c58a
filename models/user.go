// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is a registered pen-pal.
//
// SentPostcards and ReceivedPostcards are not stored on the user row. They are
// derived from the postcards table when the user is loaded: SentPostcards
// lists every postcard with this user as sender (ordered by sent time), and
// ReceivedPostcards lists every postcard with this user as receiver whose
// receipt was confirmed (ordered by receipt time).
type User struct {
	// ID is the opaque identifier assigned on registration (UUIDv7).
	ID string `json:"id"`

	// Username is the display name chosen on registration.
	Username string `json:"username"`

	// Email is the contact address given on registration.
	Email string `json:"email"`

	// Country is the user's country as given on registration.
	Country string `json:"country"`

	// DateJoined is the registration timestamp (UTC).
	DateJoined time.Time `json:"date_joined"`

	// SentPostcards holds ids of postcards sent by the user.
	SentPostcards []string `json:"sent_postcards"`

	// ReceivedPostcards holds ids of postcards the user confirmed as received.
	ReceivedPostcards []string `json:"received_postcards"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// DueScore returns the number of sent postcards minus the number of received
// ones. The higher the score, the more the user is owed a postcard.
func (u User) DueScore() int {
	return len(u.SentPostcards) - len(u.ReceivedPostcards)
}

// Recipient is a candidate chosen by the address request together with the
// due score it was selected with.
type Recipient struct {
	User

	// Score is the due score computed by the store at selection time.
	Score int64 `json:"due_score"`
}
