// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging environment variables, command-line flags, an optional JSON file
// and the defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       environment variable name for scalar fields.
type StructuredConfig struct {
	// Target describes the game server the SDK clients connect to.
	Target Target `envPrefix:"TARGET_"`

	// Admin holds the administrative HTTP endpoint settings.
	Admin Admin `envPrefix:"ADMIN_"`

	// Dispatch controls how the main-thread dispatcher is pumped.
	Dispatch Dispatch `envPrefix:"DISPATCH_"`

	// Stress holds the load generation parameters.
	Stress Stress `envPrefix:"STRESS_"`

	// Scenario selects the integration scenarios run by sdkcheck.
	Scenario Scenario `envPrefix:"SCENARIO_"`

	// Storage holds the run history database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	Metrics Metrics `envPrefix:"METRICS_"`
	Tracing Tracing `envPrefix:"TRACING_"`
	Log     Log     `envPrefix:"LOG_"`

	// Loopback configures the in-process backend used when Target.Driver is
	// "loopback".
	Loopback Loopback `envPrefix:"LOOPBACK_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Target describes the server and application clients are configured for.
type Target struct {
	// Endpoint is the server base URL.
	// Env: TARGET_ENDPOINT
	Endpoint string `env:"ENDPOINT"`
	// Env: TARGET_ACCOUNT
	Account string `env:"ACCOUNT"`
	// Env: TARGET_APPLICATION
	Application string `env:"APPLICATION"`
	// ServerGamePort is advertised to game session peers.
	// Env: TARGET_SERVER_GAME_PORT
	ServerGamePort int `env:"SERVER_GAME_PORT"`
	// Driver names the SDK transport. Only "loopback" ships with the harness.
	// Env: TARGET_DRIVER
	Driver string `env:"DRIVER"`
}

// Admin holds the administrative endpoint settings.
type Admin struct {
	// Address is the admin base URL (e.g. http://localhost:81).
	// Env: ADMIN_ADDRESS
	Address string `env:"ADDRESS"`
	// Env: ADMIN_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Dispatch controls the pump loop of the main-thread dispatcher.
type Dispatch struct {
	// TimeSlice bounds one Update call.
	// Env: DISPATCH_TIME_SLICE
	TimeSlice time.Duration `env:"TIME_SLICE"`
	// Idle is the sleep between two updates.
	// Env: DISPATCH_IDLE
	Idle time.Duration `env:"IDLE"`
}

// Stress holds the load generation parameters.
type Stress struct {
	// Worker names the registered worker run by every slot.
	// Env: STRESS_WORKER
	Worker string `env:"WORKER"`
	// Env: STRESS_ITERATIONS
	Iterations int `env:"ITERATIONS"`
	// Env: STRESS_CONCURRENT_WORKERS
	ConcurrentWorkers int `env:"CONCURRENT_WORKERS"`
	// RampUp is the number of workers started per second; zero starts all
	// workers of an iteration at once.
	// Env: STRESS_RAMP_UP
	RampUp float64 `env:"RAMP_UP"`
	// WorkerTimeout bounds a single worker run.
	// Env: STRESS_WORKER_TIMEOUT
	WorkerTimeout time.Duration `env:"WORKER_TIMEOUT"`
	// Messages is the number of RPCs sent by the messages worker.
	// Env: STRESS_MESSAGES
	Messages int `env:"MESSAGES"`
	// Dashboard enables the terminal dashboard.
	// Env: STRESS_DASHBOARD
	Dashboard bool `env:"DASHBOARD"`
}

// Scenario selects integration scenarios.
type Scenario struct {
	// Names lists the scenarios to run; empty runs all of them.
	// Env: SCENARIO_NAMES (comma separated)
	Names []string `env:"NAMES" envSeparator:","`
	// Timeout bounds a single scenario.
	// Env: SCENARIO_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Storage groups the persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the run history database settings. An empty DSN disables
// history.
type DB struct {
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
	// Driver is "sqlite3" or "pgx".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`
}

// Metrics holds the Prometheus endpoint settings. An empty address disables
// the HTTP server.
type Metrics struct {
	// Env: METRICS_ADDRESS
	Address string `env:"ADDRESS"`
}

// Tracing holds the OpenTelemetry settings.
type Tracing struct {
	// Env: TRACING_ENABLED
	Enabled bool `env:"ENABLED"`
	// Env: TRACING_SERVICE_NAME
	ServiceName string `env:"SERVICE_NAME"`
}

// Log holds logging settings.
type Log struct {
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
	// ClientDir, when set, receives one <id>.logs.txt file per SDK client.
	// Env: LOG_CLIENT_DIR
	ClientDir string `env:"CLIENT_DIR"`
}

// Loopback configures the in-process backend.
type Loopback struct {
	// CCULimit caps concurrent authenticated users; zero disables the
	// admission queue.
	// Env: LOOPBACK_CCU_LIMIT
	CCULimit int `env:"CCU_LIMIT"`
	// AdminAddress is the listen address of the admin HTTP API.
	// Env: LOOPBACK_ADMIN_ADDRESS
	AdminAddress string `env:"ADMIN_ADDRESS"`
	// Env: LOOPBACK_PEER_CONFIGURATION
	PeerConfiguration string `env:"PEER_CONFIGURATION"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// environment variables, the given command-line arguments, the optional JSON
// file and the defaults.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
