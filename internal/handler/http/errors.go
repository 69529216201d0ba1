// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidFormData is returned when the creation request is not a
	// readable multipart form.
	ErrInvalidFormData = errors.New("invalid multipart form data")

	// ErrPanicRecovered wraps a value recovered from a panicking handler.
	ErrPanicRecovered = errors.New("panic recovered")
)
