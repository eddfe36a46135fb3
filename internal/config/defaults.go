// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Supported values of Target.Driver and Storage.DB.Driver.
const (
	DriverLoopback = "loopback"

	DBDriverSQLite   = "sqlite3"
	DBDriverPostgres = "pgx"
)

// Default returns the built-in configuration: the local test application,
// 5ms pump slices with 10ms idle and 1000 iterations of 10 connection workers.
func Default() *StructuredConfig {
	return &StructuredConfig{
		Target: Target{
			Endpoint:       "http://localhost",
			Account:        "tests",
			Application:    "test",
			ServerGamePort: 7777,
			Driver:         DriverLoopback,
		},
		Admin: Admin{
			Address:        "http://localhost:81",
			RequestTimeout: 5 * time.Second,
		},
		Dispatch: Dispatch{
			TimeSlice: 5 * time.Millisecond,
			Idle:      10 * time.Millisecond,
		},
		Stress: Stress{
			Worker:            "connection",
			Iterations:        1000,
			ConcurrentWorkers: 10,
			WorkerTimeout:     30 * time.Second,
			Messages:          10,
		},
		Scenario: Scenario{
			Timeout: 30 * time.Second,
		},
		Storage: Storage{
			DB: DB{Driver: DBDriverSQLite},
		},
		Tracing: Tracing{
			ServiceName: "gameflow-harness",
		},
		Log: Log{
			Level: "info",
		},
		Loopback: Loopback{
			AdminAddress: "127.0.0.1:0",
		},
	}
}
