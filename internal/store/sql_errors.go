// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// ErrorClassification is the result type returned by [ErrorClassificator.Classify].
// It tells repositories whether a failed statement hit a constraint the
// domain cares about, or whether the failure is transient.
type ErrorClassification int

const (
	// NonRetryable indicates that the failed operation should not be retried.
	// This is the default classification for unrecognised errors, syntax
	// errors, and data exceptions.
	NonRetryable ErrorClassification = iota

	// Retryable indicates that the failed operation may succeed if attempted
	// again (e.g. after a transient connection loss or a deadlock rollback).
	Retryable

	// UniqueViolation indicates a UNIQUE or PRIMARY KEY constraint failure.
	UniqueViolation

	// ForeignKeyViolation indicates a row referenced a missing parent row.
	ForeignKeyViolation
)

// ErrorClassificator maps a driver-specific error to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
