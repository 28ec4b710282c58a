// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-postcrossing/internal/config"
	"github.com/MKhiriev/go-postcrossing/internal/logger"
	"github.com/MKhiriev/go-postcrossing/models"
)

// newMockDB returns a postgres-flavoured *DB backed by sqlmock. Unmet
// expectations fail the test on cleanup.
func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = conn.Close()
	})

	return &DB{
		DB:                 conn,
		driver:             config.DriverPostgres,
		builder:            newStatementBuilder(config.DriverPostgres),
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

// newSQLiteStorages opens a private in-memory SQLite database with the
// schema applied.
func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()

	cfg := config.Storage{DB: config.DB{
		Driver: config.DriverSQLite,
		DSN:    "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	}}

	s, err := NewStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func testTime(offset time.Duration) time.Time {
	return time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC).Add(offset)
}

func mustCreateUser(t *testing.T, s *Storages, id, username string) models.User {
	t.Helper()

	user, err := s.UserRepository.CreateUser(context.Background(), models.User{
		ID:         id,
		Username:   username,
		Email:      username + "@example.com",
		Country:    "Country of " + username,
		DateJoined: testTime(0),
	})
	require.NoError(t, err)

	return user
}

func mustCreatePostcard(t *testing.T, s *Storages, id, senderID, receiverID string, sentAt time.Time) models.Postcard {
	t.Helper()

	postcard, err := s.PostcardRepository.CreatePostcard(context.Background(), models.Postcard{
		ID:         id,
		Code:       "PC-" + id,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Status:     models.PostcardTraveling,
		SentAt:     sentAt,
	})
	require.NoError(t, err)

	return postcard
}
