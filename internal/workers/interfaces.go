// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides the units of load a stress run executes.
// It defines the Worker interface and a Workers registry that builds a
// worker by name.
package workers

import (
	"context"

	"github.com/MKhiriev/gameflow-harness/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/workers_mock.go -package=mock

// Worker is the interface that must be implemented by any stress worker.
//
// Run drives one client identified by id through a short scripted session
// and reports whether it succeeded and how long the measured part took.
// Implementations release the client before returning and never panic on
// SDK failures; the failure is reported in the returned Result.
type Worker interface {
	Run(ctx context.Context, id int) models.Result
}
