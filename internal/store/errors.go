// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when no user has the requested id, or when a
	// postcard references a user that does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrPostcardNotFound is returned when no postcard has the requested id.
	ErrPostcardNotFound = errors.New("postcard not found")

	// ErrPostcardAlreadyReceived is returned when a receipt is confirmed for a
	// postcard whose status is already "received".
	ErrPostcardAlreadyReceived = errors.New("postcard already received")

	// ErrNoEligibleRecipient is returned when there is no user other than the
	// sender to assign an address to.
	ErrNoEligibleRecipient = errors.New("no eligible recipient")

	// ErrPostcardCodeConflict is returned when the generated postcard code (or
	// id) collides with an existing row. A new code should be generated.
	ErrPostcardCodeConflict = errors.New("postcard code already exists")

	// ErrTransientFailure marks errors the driver classified as retryable:
	// lost connections, serialization failures, a busy database.
	ErrTransientFailure = errors.New("transient storage failure")

	// ErrUnsupportedDriver is returned by [NewConnect] for an unknown driver.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
