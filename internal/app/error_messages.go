// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// gift server handlers, middleware and the terminal client.
//
// All Msg* constants are human-readable message strings written into the
// "error" field of JSON responses. The client matches on them to recover the
// business error behind a status code, so wording must stay stable.
package app

const (
	// MsgGiftNotFound is returned when no live gift has the requested id.
	MsgGiftNotFound = "Gift not found"

	// MsgQuotaExceeded is returned when the caller's address already owns the
	// maximum number of live gifts.
	MsgQuotaExceeded = "You have reached the maximum limit of 3 gifts"

	// MsgTooManyRequests is returned by the /api/ rate limiter.
	MsgTooManyRequests = "Too many requests, please try again later"

	// MsgInternalServerError is returned for unexpected failures outside
	// development mode.
	MsgInternalServerError = "Internal server error"

	// MsgMessageRequired is returned when the gift message is blank.
	MsgMessageRequired = "Message is required"

	// MsgInvalidTheme is returned when the theme is missing or unknown.
	MsgInvalidTheme = "Invalid theme"

	// MsgInvalidFileType is returned when the image is not jpeg, png or gif.
	MsgInvalidFileType = "Invalid file type"

	// MsgFileTooLarge is returned when the image exceeds the upload limit.
	MsgFileTooLarge = "File too large"

	// MsgInvalidFormData is returned when the multipart body cannot be parsed.
	MsgInvalidFormData = "Invalid form data"

	// MsgNotFound is returned for unknown API routes and methods.
	MsgNotFound = "Not found"
)
