// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the history of stress runs in SQLite or
// PostgreSQL.
package store

import (
	"context"

	"github.com/MKhiriev/gameflow-harness/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// RunRepository stores one row per stress iteration.
type RunRepository interface {
	// SaveRun inserts rec and returns its database id.
	SaveRun(ctx context.Context, rec models.RunRecord) (int64, error)
	// GetRun returns the record with the given id or ErrRunNotFound.
	GetRun(ctx context.Context, id int64) (models.RunRecord, error)
	// ListRuns returns the records matching filter, newest first.
	ListRuns(ctx context.Context, filter RunFilter) ([]models.RunRecord, error)
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// RunFilter narrows ListRuns. Zero fields do not filter.
type RunFilter struct {
	RunID  string
	Worker string
	Limit  uint64
}
