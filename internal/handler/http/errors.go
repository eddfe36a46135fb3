// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrHistoryDisabled is returned by the run endpoints when no database
	// is configured.
	ErrHistoryDisabled = errors.New("run history is disabled")

	// ErrInvalidRunID is returned for a run id that is not a positive
	// integer.
	ErrInvalidRunID = errors.New("invalid run id")

	// ErrInvalidLimit is returned for a limit query parameter that is not a
	// positive integer.
	ErrInvalidLimit = errors.New("invalid limit")
)

// msgInternalServerError replaces the body of any 5xx response so database
// errors never reach the client.
const msgInternalServerError = "internal server error"
