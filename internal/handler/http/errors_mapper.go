// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/gameflow-harness/internal/store"
)

var errorStatusMap = map[error]int{
	ErrHistoryDisabled: http.StatusServiceUnavailable,
	ErrInvalidRunID:    http.StatusBadRequest,
	ErrInvalidLimit:    http.StatusBadRequest,

	store.ErrRunNotFound:      http.StatusNotFound,
	store.ErrRunAlreadyExists: http.StatusConflict,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
