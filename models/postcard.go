// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// PostcardStatus is the delivery state of a postcard.
type PostcardStatus string

const (
	// PostcardTraveling is the state between the address request and the
	// receipt confirmation.
	PostcardTraveling PostcardStatus = "traveling"

	// PostcardReceived is the terminal state set once by the receiver.
	PostcardReceived PostcardStatus = "received"
)

// IsValid reports whether s is one of the known statuses.
func (s PostcardStatus) IsValid() bool {
	return s == PostcardTraveling || s == PostcardReceived
}

// Postcard is a single card travelling from a sender to a receiver.
//
// Status moves from [PostcardTraveling] to [PostcardReceived] exactly once,
// and ReceivedAt is non-nil if and only if the status is [PostcardReceived].
type Postcard struct {
	// ID is the opaque identifier of the postcard (UUIDv7).
	ID string `json:"id"`

	// Code is the human-readable postcard code, e.g. "PC-1760600000-3fa2b9c1".
	Code string `json:"postcard_code"`

	// SenderID references the user who requested the address.
	SenderID string `json:"sender_id"`

	// ReceiverID references the user selected as recipient.
	ReceiverID string `json:"receiver_id"`

	// Status is the delivery state.
	Status PostcardStatus `json:"status"`

	// SentAt is the time the address was assigned.
	SentAt time.Time `json:"sent_date"`

	// ReceivedAt is the time the receiver confirmed the postcard.
	ReceivedAt *time.Time `json:"received_date"`
}

// TableName returns the name of the database table
// associated with the Postcard model.
func (p Postcard) TableName() string {
	return "postcards"
}

// IsReceived reports whether the receipt was already confirmed.
func (p Postcard) IsReceived() bool {
	return p.Status == PostcardReceived
}
