// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/gameflow-harness/internal/config"
	"github.com/MKhiriev/gameflow-harness/internal/logger"
)

// Storages groups the repositories over one database connection.
type Storages struct {
	RunRepository RunRepository

	db *DB
}

// NewStorages opens and migrates the database described by cfg.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	db, err := NewDB(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	return &Storages{
		RunRepository: NewRunRepository(db, log),
		db:            db,
	}, nil
}

// Close closes the database connection.
func (s *Storages) Close() error {
	return s.db.Close()
}
