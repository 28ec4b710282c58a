// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MessageResponse is the body of every plain acknowledgement and of every
// error response.
type MessageResponse struct {
	Message string `json:"message"`
}

// RegisterResponse is returned by a successful registration.
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

// RecipientInfo describes who the sender should write to.
type RecipientInfo struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Country  string `json:"country"`
	Address  string `json:"address"`
}

// AddressResponse is returned by a successful address request.
type AddressResponse struct {
	Message       string        `json:"message"`
	RecipientInfo RecipientInfo `json:"recipientInfo"`
	PostcardID    string        `json:"postcardId"`
	PostcardCode  string        `json:"postcardCode"`
}

// AddressAssignment is the result of an address request at the service level:
// the selected recipient, the address to write to and the postcard created
// for the exchange.
type AddressAssignment struct {
	Recipient Recipient
	Address   string
	Postcard  Postcard
}

// ToResponse converts the assignment into the HTTP response body.
func (a AddressAssignment) ToResponse(message string) AddressResponse {
	return AddressResponse{
		Message: message,
		RecipientInfo: RecipientInfo{
			UserID:   a.Recipient.ID,
			Username: a.Recipient.Username,
			Country:  a.Recipient.Country,
			Address:  a.Address,
		},
		PostcardID:   a.Postcard.ID,
		PostcardCode: a.Postcard.Code,
	}
}
