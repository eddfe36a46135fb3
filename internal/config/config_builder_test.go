// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that a builder without sources fails
// validation instead of returning a zero config.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidTargetConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies the merge priority: a field keeps
// the value of the first config that sets it.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Stress: Stress{Iterations: 5}},
		&StructuredConfig{Stress: Stress{Iterations: 50, ConcurrentWorkers: 3}},
	)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Stress.Iterations)
	assert.Equal(t, 3, cfg.Stress.ConcurrentWorkers)
	assert.Equal(t, "connection", cfg.Stress.Worker)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

func TestWithDefaults_ProducesValidConfig(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "tests", cfg.Target.Account)
	assert.Equal(t, "test", cfg.Target.Application)
	assert.Equal(t, 7777, cfg.Target.ServerGamePort)
	assert.Equal(t, "http://localhost:81", cfg.Admin.Address)
	assert.Equal(t, 5*time.Millisecond, cfg.Dispatch.TimeSlice)
	assert.Equal(t, 10*time.Millisecond, cfg.Dispatch.Idle)
	assert.Equal(t, 1000, cfg.Stress.Iterations)
	assert.Equal(t, 10, cfg.Stress.ConcurrentWorkers)
	assert.Equal(t, DBDriverSQLite, cfg.Storage.DB.Driver)
	assert.Empty(t, cfg.Storage.DB.DSN)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoPath verifies that withJSON is a no-op without a path.
func TestWithJSON_NoPath(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_LoadsFileFromEarlierSource(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"stress": map[string]any{"iterations": 42, "worker_timeout": "2s"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON().withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, 42, cfg.Stress.Iterations)
	assert.Equal(t, 2*time.Second, cfg.Stress.WorkerTimeout)
}

func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/no/such/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_UnknownFlagSetsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-nope"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_Priority(t *testing.T) {
	clearEnvVars(t)
	path := writeTempJSONConfig(t, map[string]any{
		"stress": map[string]any{"iterations": 7, "concurrent_workers": 4, "messages": 3},
	})
	t.Setenv("STRESS_ITERATIONS", "9")

	cfg, err := GetStructuredConfig([]string{"-c", path, "-n", "8", "-w", "2"})
	require.NoError(t, err)

	// env > flags > json > defaults
	assert.Equal(t, 9, cfg.Stress.Iterations)
	assert.Equal(t, 2, cfg.Stress.ConcurrentWorkers)
	assert.Equal(t, 3, cfg.Stress.Messages)
	assert.Equal(t, "connection", cfg.Stress.Worker)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{name: "defaults", mutate: func(*StructuredConfig) {}},
		{
			name:    "unknown driver",
			mutate:  func(c *StructuredConfig) { c.Target.Driver = "websocket" },
			wantErr: ErrInvalidTargetConfigs,
		},
		{
			name:    "missing account",
			mutate:  func(c *StructuredConfig) { c.Target.Account = "" },
			wantErr: ErrInvalidTargetConfigs,
		},
		{
			name:    "admin timeout",
			mutate:  func(c *StructuredConfig) { c.Admin.RequestTimeout = 0 },
			wantErr: ErrInvalidAdminConfigs,
		},
		{
			name:    "zero slice",
			mutate:  func(c *StructuredConfig) { c.Dispatch.TimeSlice = 0 },
			wantErr: ErrInvalidDispatchConfigs,
		},
		{
			name:    "negative ramp up",
			mutate:  func(c *StructuredConfig) { c.Stress.RampUp = -1 },
			wantErr: ErrInvalidStressConfigs,
		},
		{
			name:    "zero iterations",
			mutate:  func(c *StructuredConfig) { c.Stress.Iterations = 0 },
			wantErr: ErrInvalidStressConfigs,
		},
		{
			name:    "scenario timeout",
			mutate:  func(c *StructuredConfig) { c.Scenario.Timeout = 0 },
			wantErr: ErrInvalidScenarioConfigs,
		},
		{
			name: "unsupported db driver",
			mutate: func(c *StructuredConfig) {
				c.Storage.DB.DSN = "x"
				c.Storage.DB.Driver = "mysql"
			},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "postgres driver",
			mutate: func(c *StructuredConfig) {
				c.Storage.DB.DSN = "postgres://localhost/runs"
				c.Storage.DB.Driver = DBDriverPostgres
			},
		},
		{
			name:    "bad log level",
			mutate:  func(c *StructuredConfig) { c.Log.Level = "loud" },
			wantErr: ErrInvalidLogConfigs,
		},
		{
			name:    "negative ccu",
			mutate:  func(c *StructuredConfig) { c.Loopback.CCULimit = -1 },
			wantErr: ErrInvalidLoopbackConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
