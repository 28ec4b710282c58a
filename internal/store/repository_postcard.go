// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-postcrossing/internal/logger"
	"github.com/MKhiriev/go-postcrossing/models"
)

// postcardRepository is the SQL implementation of [PostcardRepository].
// The sent and received lists of a user are never stored: they are read
// from the "postcards" table by sender and by receiver.
type postcardRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewPostcardRepository(db *DB, logger *logger.Logger) PostcardRepository {
	logger.Debug().Msg("creating postcard repository")
	return &postcardRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePostcard inserts the postcard in a single statement. The sender's
// sent list grows as a consequence; no second write is needed.
func (r *postcardRepository) CreatePostcard(ctx context.Context, postcard models.Postcard) (models.Postcard, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertPostcardQuery(r.db.builder, postcard)
	if err != nil {
		log.Err(err).Str("func", "*postcardRepository.CreatePostcard").Msg("failed to build query")
		return models.Postcard{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		switch r.db.classify(err) {
		case UniqueViolation:
			log.Warn().Err(err).
				Str("func", "*postcardRepository.CreatePostcard").
				Str("postcard_code", postcard.Code).
				Msg("postcard code collision")
			return models.Postcard{}, ErrPostcardCodeConflict
		case ForeignKeyViolation:
			log.Warn().Err(err).
				Str("func", "*postcardRepository.CreatePostcard").
				Str("sender_id", postcard.SenderID).
				Str("receiver_id", postcard.ReceiverID).
				Msg("postcard references a missing user")
			return models.Postcard{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*postcardRepository.CreatePostcard").Msg("failed to insert postcard")
		return models.Postcard{}, r.db.wrapError(ErrExecutingStatement, err)
	}

	return postcard, nil
}

func (r *postcardRepository) FindPostcardByID(ctx context.Context, postcardID string) (models.Postcard, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPostcardByIDQuery(r.db.builder, postcardID)
	if err != nil {
		log.Err(err).Str("func", "*postcardRepository.FindPostcardByID").Msg("failed to build query")
		return models.Postcard{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	postcard, err := scanPostcard(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Postcard{}, ErrPostcardNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*postcardRepository.FindPostcardByID").Str("postcard_id", postcardID).Msg("failed to query postcard")
		return models.Postcard{}, r.db.wrapError(ErrExecutingQuery, err)
	}

	return postcard, nil
}

// MarkPostcardReceived performs the traveling → received transition in one
// transaction: a conditional UPDATE, a status probe when nothing was updated,
// and a read of the final row.
//
// The transaction is rolled back automatically (via defer) on every error
// path; commit is attempted only after the updated row was read back.
func (r *postcardRepository) MarkPostcardReceived(ctx context.Context, postcardID string, receivedAt time.Time) (models.Postcard, error) {
	log := logger.FromContext(ctx)

	updateQuery, updateArgs, err := buildMarkPostcardReceivedQuery(r.db.builder, postcardID, receivedAt)
	if err != nil {
		log.Err(err).Str("func", "*postcardRepository.MarkPostcardReceived").Msg("failed to build update query")
		return models.Postcard{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	selectQuery, selectArgs, err := buildSelectPostcardByIDQuery(r.db.builder, postcardID)
	if err != nil {
		log.Err(err).Str("func", "*postcardRepository.MarkPostcardReceived").Msg("failed to build select query")
		return models.Postcard{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*postcardRepository.MarkPostcardReceived").Msg("failed to begin transaction")
		return models.Postcard{}, r.db.wrapError(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, updateQuery, updateArgs...)
	if err != nil {
		log.Err(err).Str("func", "*postcardRepository.MarkPostcardReceived").Str("postcard_id", postcardID).Msg("failed to update postcard status")
		return models.Postcard{}, r.db.wrapError(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*postcardRepository.MarkPostcardReceived").Msg("failed to read affected rows")
		return models.Postcard{}, r.db.wrapError(ErrExecutingStatement, err)
	}

	if affected == 0 {
		return models.Postcard{}, r.explainNotUpdated(ctx, tx, postcardID)
	}

	postcard, err := scanPostcard(tx.QueryRowContext(ctx, selectQuery, selectArgs...))
	if err != nil {
		log.Err(err).Str("func", "*postcardRepository.MarkPostcardReceived").Str("postcard_id", postcardID).Msg("failed to read updated postcard")
		return models.Postcard{}, r.db.wrapError(ErrScanningRow, err)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "*postcardRepository.MarkPostcardReceived").Msg("failed to commit transaction")
		return models.Postcard{}, r.db.wrapError(ErrCommitingTransaction, commitErr)
	}

	log.Info().
		Str("func", "*postcardRepository.MarkPostcardReceived").
		Str("postcard_id", postcardID).
		Str("receiver_id", postcard.ReceiverID).
		Msg("postcard marked as received")

	return postcard, nil
}

// explainNotUpdated tells a missing postcard from one already received.
func (r *postcardRepository) explainNotUpdated(ctx context.Context, tx *sql.Tx, postcardID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPostcardStatusQuery(r.db.builder, postcardID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var status string
	err = tx.QueryRowContext(ctx, query, args...).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().Str("func", "*postcardRepository.MarkPostcardReceived").Str("postcard_id", postcardID).Msg("postcard not found")
		return ErrPostcardNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*postcardRepository.MarkPostcardReceived").Msg("failed to read postcard status")
		return r.db.wrapError(ErrExecutingQuery, err)
	}

	log.Warn().
		Str("func", "*postcardRepository.MarkPostcardReceived").
		Str("postcard_id", postcardID).
		Str("status", status).
		Msg("postcard was already received")

	return ErrPostcardAlreadyReceived
}

func (r *postcardRepository) ListSentPostcardIDs(ctx context.Context, userID string) ([]string, error) {
	query, args, err := buildSelectSentPostcardIDsQuery(r.db.builder, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.listIDs(ctx, "*postcardRepository.ListSentPostcardIDs", userID, query, args)
}

func (r *postcardRepository) ListReceivedPostcardIDs(ctx context.Context, userID string) ([]string, error) {
	query, args, err := buildSelectReceivedPostcardIDsQuery(r.db.builder, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.listIDs(ctx, "*postcardRepository.ListReceivedPostcardIDs", userID, query, args)
}

// listIDs runs a single-column id query. An empty result is an empty,
// non-nil slice.
func (r *postcardRepository) listIDs(ctx context.Context, funcName, userID, query string, args []any) ([]string, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Str("user_id", userID).Msg("failed to execute query")
		return nil, r.db.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if scanErr := rows.Scan(&id); scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Str("user_id", userID).Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Str("user_id", userID).Msg("error iterating rows")
		return nil, r.db.wrapError(ErrScanningRows, err)
	}

	return ids, nil
}

func scanPostcard(row rowScanner) (models.Postcard, error) {
	var (
		postcard   models.Postcard
		status     string
		receivedAt sql.NullTime
	)

	err := row.Scan(
		&postcard.ID,
		&postcard.Code,
		&postcard.SenderID,
		&postcard.ReceiverID,
		&status,
		&postcard.SentAt,
		&receivedAt,
	)
	if err != nil {
		return models.Postcard{}, err
	}

	postcard.Status = models.PostcardStatus(status)
	if receivedAt.Valid {
		t := receivedAt.Time
		postcard.ReceivedAt = &t
	}

	return postcard, nil
}
