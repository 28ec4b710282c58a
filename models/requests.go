// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegisterRequest is the body of POST /api/users/register.
// All fields are required; no format or uniqueness checks are applied.
type RegisterRequest struct {
	Username string `json:"username" validate:"notblank"`
	Email    string `json:"email" validate:"notblank"`
	Country  string `json:"country" validate:"notblank"`
}

// AddressRequest is the body of POST /api/postcards/request-address.
type AddressRequest struct {
	// SenderID is the id of the user who wants to send a postcard.
	SenderID string `json:"senderId" validate:"notblank"`
}
