// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the application-level message strings of the postcard
// exchange.
//
// All Msg* constants are human-readable texts written into {"message": ...}
// response bodies. Keeping them in one place keeps the wording of the API
// consistent between handlers, and lets the client recognize them.
package app

// Success messages.
const (
	// MsgHello is the body of the liveness endpoint.
	MsgHello = "Hello, the server is working!"

	// MsgUserRegistered accompanies the id of a newly registered user.
	MsgUserRegistered = "User registered!"

	// MsgAddressAssigned accompanies the recipient chosen by an address
	// request.
	MsgAddressAssigned = "Address assigned to the most 'due' user!"

	// MsgPostcardReceived confirms that a postcard moved to received.
	MsgPostcardReceived = "Postcard successfully registered as received!"
)

// Client errors. Store error texts are logged, never returned.
const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidID is returned when a user or postcard id is not a UUID.
	MsgInvalidID = "Invalid id"

	// MsgMissingFields is returned when a required body field is absent or
	// blank.
	MsgMissingFields = "Missing required fields"

	// MsgNotFound is returned for unknown routes and unsupported methods.
	MsgNotFound = "Not found"

	MsgUserNotFound        = "User not found"
	MsgNoEligibleRecipient = "No eligible users available."
	MsgPostcardNotFound    = "Postcard not found."

	// MsgPostcardAlreadyReceived is returned by a second receipt
	// confirmation.
	MsgPostcardAlreadyReceived = "This postcard has already been registered."
)

// Server errors.
const (
	// MsgServiceUnavailable is returned for transient store failures and for
	// postcard codes that kept colliding.
	MsgServiceUnavailable = "Service temporarily unavailable, try again later"

	// MsgRequestTimedOut is returned when the request deadline expired.
	MsgRequestTimedOut = "Request timed out"

	MsgRegisterUserFailed   = "Error registering user"
	MsgFetchUserFailed      = "Error fetching user"
	MsgRequestAddressFailed = "Error requesting address"
	MsgConfirmReceiptFailed = "Error registering postcard"
	MsgFetchPostcardFailed  = "Error fetching postcard"
)
