// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Result is the outcome of one stress worker run.
type Result struct {
	WorkerID int
	Success  bool
	Duration time.Duration
	Err      error
}

// Stats aggregates the results of one stress iteration. Durations only
// account for successful runs.
type Stats struct {
	Total       int
	Succeeded   int
	SuccessRate float64
	Avg         time.Duration
	Min         time.Duration
	Max         time.Duration
}

// RunRecord is one persisted stress iteration.
type RunRecord struct {
	ID                int64         `json:"id"`
	RunID             string        `json:"run_id"`
	Worker            string        `json:"worker"`
	Iteration         int           `json:"iteration"`
	ConcurrentWorkers int           `json:"concurrent_workers"`
	StartupTime       time.Duration `json:"startup_time"`
	ExecutionTime     time.Duration `json:"execution_time"`
	Stats             Stats         `json:"stats"`
	CreatedAt         time.Time     `json:"created_at"`
}
