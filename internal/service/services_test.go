// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-postcrossing/internal/config"
	"github.com/MKhiriev/go-postcrossing/internal/logger"
	"github.com/MKhiriev/go-postcrossing/internal/store"
	"github.com/MKhiriev/go-postcrossing/models"
)

// newSQLiteServices wires the full service stack over a private in-memory
// SQLite database.
func newSQLiteServices(t *testing.T) (*Services, *fakeMetrics) {
	t.Helper()
	ctx := context.Background()

	storages, err := store.NewStorages(ctx, config.Storage{DB: config.DB{
		Driver: config.DriverSQLite,
		DSN:    "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	metrics := &fakeMetrics{}
	services, err := NewServices(storages, config.StructuredConfig{App: config.App{Version: "test"}}, metrics, logger.Nop())
	require.NoError(t, err)

	return services, metrics
}

func TestNewServices_VersionRequired(t *testing.T) {
	_, err := NewServices(&store.Storages{}, config.StructuredConfig{}, nil, logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

func TestServices_RegisterAndLookup(t *testing.T) {
	services, metrics := newSQLiteServices(t)
	ctx := context.Background()

	registered, err := services.UserService.RegisterUser(ctx, models.RegisterRequest{
		Username: "alice", Email: "alice@example.com", Country: "NL",
	})
	require.NoError(t, err)

	user, err := services.UserService.GetUser(ctx, registered.ID)
	require.NoError(t, err)

	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "NL", user.Country)
	assert.True(t, registered.DateJoined.Equal(user.DateJoined))
	assert.Empty(t, user.SentPostcards)
	assert.Empty(t, user.ReceivedPostcards)
	assert.Equal(t, 1, metrics.registered)

	_, err = services.UserService.GetUser(ctx, uuid.NewString())
	assert.ErrorIs(t, err, store.ErrUserNotFound)

	_, err = services.UserService.GetUser(ctx, "nope")
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestServices_SoleUserHasNoRecipient(t *testing.T) {
	services, _ := newSQLiteServices(t)
	ctx := context.Background()

	alone, err := services.UserService.RegisterUser(ctx, models.RegisterRequest{Username: "a", Email: "a", Country: "X"})
	require.NoError(t, err)

	_, err = services.PostcardService.RequestAddress(ctx, models.AddressRequest{SenderID: alone.ID})
	assert.ErrorIs(t, err, store.ErrNoEligibleRecipient)

	_, err = services.PostcardService.RequestAddress(ctx, models.AddressRequest{SenderID: uuid.NewString()})
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

// A and B register; A requests an address and gets B; B confirms; a second
// confirmation is rejected without changing state.
func TestServices_ExchangeScenario(t *testing.T) {
	services, metrics := newSQLiteServices(t)
	ctx := context.Background()

	a, err := services.UserService.RegisterUser(ctx, models.RegisterRequest{Username: "A", Email: "a@example.com", Country: "X"})
	require.NoError(t, err)
	b, err := services.UserService.RegisterUser(ctx, models.RegisterRequest{Username: "B", Email: "b@example.com", Country: "Y"})
	require.NoError(t, err)

	assignment, err := services.PostcardService.RequestAddress(ctx, models.AddressRequest{SenderID: a.ID})
	require.NoError(t, err)

	assert.Equal(t, b.ID, assignment.Recipient.ID)
	assert.Equal(t, "B", assignment.Recipient.Username)
	assert.Equal(t, "Y", assignment.Recipient.Country)
	assert.Equal(t, config.DefaultRecipientAddress, assignment.Address)
	assert.Equal(t, models.PostcardTraveling, assignment.Postcard.Status)
	assert.Regexp(t, `^PC-\d+-[0-9a-f]{8}$`, assignment.Postcard.Code)

	postcardID := assignment.Postcard.ID

	sender, err := services.UserService.GetUser(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{postcardID}, sender.SentPostcards)

	receiver, err := services.UserService.GetUser(ctx, b.ID)
	require.NoError(t, err)
	assert.Empty(t, receiver.ReceivedPostcards)

	received, err := services.PostcardService.ConfirmReceipt(ctx, postcardID)
	require.NoError(t, err)
	assert.Equal(t, models.PostcardReceived, received.Status)
	require.NotNil(t, received.ReceivedAt)

	receiver, err = services.UserService.GetUser(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{postcardID}, receiver.ReceivedPostcards)

	_, err = services.PostcardService.ConfirmReceipt(ctx, postcardID)
	assert.ErrorIs(t, err, store.ErrPostcardAlreadyReceived)

	receiver, err = services.UserService.GetUser(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{postcardID}, receiver.ReceivedPostcards)

	stored, err := services.PostcardService.GetPostcard(ctx, postcardID)
	require.NoError(t, err)
	assert.True(t, received.ReceivedAt.Equal(*stored.ReceivedAt))

	_, err = services.PostcardService.ConfirmReceipt(ctx, uuid.NewString())
	assert.ErrorIs(t, err, store.ErrPostcardNotFound)

	assert.Equal(t, 2, metrics.registered)
	assert.Equal(t, 1, metrics.sent)
	assert.Equal(t, 1, metrics.received)
}
