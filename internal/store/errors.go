// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by storage methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrGiftNotFound is returned when no live gift has the requested id.
	ErrGiftNotFound = errors.New("gift not found")

	// ErrQuotaExceeded is returned when the creator address already owns
	// [models.MaxGiftsPerAddress] live gifts.
	ErrQuotaExceeded = errors.New("gift quota exceeded")

	// ErrInvalidUploadName is returned when an upload name would escape the
	// uploads directory.
	ErrInvalidUploadName = errors.New("invalid upload name")

	// ErrHistoryNotSaved is returned when an INSERT of a history entry
	// completes without error but affects no rows.
	ErrHistoryNotSaved = errors.New("history entry was not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan history rows")
)
