// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-postcrossing/models"
)

const (
	usersTable     = "users"
	postcardsTable = "postcards"
)

var (
	userColumns = []string{"id", "username", "email", "country", "date_joined"}

	postcardColumns = []string{"id", "code", "sender_id", "receiver_id", "status", "sent_at", "received_at"}
)

// dueScoreExpr computes sent minus received postcards for the outer users row.
const dueScoreExpr = `(SELECT COUNT(*) FROM postcards WHERE postcards.sender_id = users.id)
		- (SELECT COUNT(*) FROM postcards WHERE postcards.receiver_id = users.id AND postcards.status = ?)
		AS due_score`

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns(userColumns...).
		Values(user.ID, user.Username, user.Email, user.Country, user.DateJoined).
		ToSql()
}

func buildSelectUserByIDQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

// buildSelectMostDueRecipientQuery selects the single user other than
// senderID with the highest due score. Ties go to the lowest id.
func buildSelectMostDueRecipientQuery(b sq.StatementBuilderType, senderID string) (string, []any, error) {
	return b.Select(userColumns...).
		Column(sq.Expr(dueScoreExpr, string(models.PostcardReceived))).
		From(usersTable).
		Where(sq.NotEq{"id": senderID}).
		OrderBy("due_score DESC", "id ASC").
		Limit(1).
		ToSql()
}

func buildInsertPostcardQuery(b sq.StatementBuilderType, postcard models.Postcard) (string, []any, error) {
	return b.Insert(postcardsTable).
		Columns(postcardColumns...).
		Values(
			postcard.ID,
			postcard.Code,
			postcard.SenderID,
			postcard.ReceiverID,
			string(postcard.Status),
			postcard.SentAt,
			postcard.ReceivedAt,
		).
		ToSql()
}

func buildSelectPostcardByIDQuery(b sq.StatementBuilderType, postcardID string) (string, []any, error) {
	return b.Select(postcardColumns...).
		From(postcardsTable).
		Where(sq.Eq{"id": postcardID}).
		ToSql()
}

func buildSelectPostcardStatusQuery(b sq.StatementBuilderType, postcardID string) (string, []any, error) {
	return b.Select("status").
		From(postcardsTable).
		Where(sq.Eq{"id": postcardID}).
		ToSql()
}

// buildMarkPostcardReceivedQuery only matches traveling postcards, so a
// concurrent second confirmation updates nothing.
func buildMarkPostcardReceivedQuery(b sq.StatementBuilderType, postcardID string, receivedAt time.Time) (string, []any, error) {
	return b.Update(postcardsTable).
		Set("status", string(models.PostcardReceived)).
		Set("received_at", receivedAt).
		Where(sq.Eq{"id": postcardID}).
		Where(sq.Eq{"status": string(models.PostcardTraveling)}).
		ToSql()
}

func buildSelectSentPostcardIDsQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return b.Select("id").
		From(postcardsTable).
		Where(sq.Eq{"sender_id": userID}).
		OrderBy("sent_at ASC", "id ASC").
		ToSql()
}

func buildSelectReceivedPostcardIDsQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return b.Select("id").
		From(postcardsTable).
		Where(sq.Eq{"receiver_id": userID}).
		Where(sq.Eq{"status": string(models.PostcardReceived)}).
		OrderBy("received_at ASC", "id ASC").
		ToSql()
}
