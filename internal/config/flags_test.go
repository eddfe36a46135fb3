// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{
			name:     "empty address",
			addr:     NetAddress{},
			expected: "",
		},
		{
			name:     "localhost with port",
			addr:     NetAddress{Host: "localhost", Port: 8080},
			expected: "localhost:8080",
		},
		{
			name:     "IP address with port",
			addr:     NetAddress{Host: "127.0.0.1", Port: 9090},
			expected: "127.0.0.1:9090",
		},
		{
			name:     "only host no port",
			addr:     NetAddress{Host: "localhost", Port: 0},
			expected: "localhost:0",
		},
		{
			name:     "only port no host",
			addr:     NetAddress{Host: "", Port: 8080},
			expected: ":8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.addr.String()
			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		errorMsg     string
		expectedAddr NetAddress
	}{
		{
			name:         "valid localhost",
			input:        "localhost:8080",
			expectError:  false,
			expectedAddr: NetAddress{Host: "localhost", Port: 8080},
		},
		{
			name:         "valid IPv4",
			input:        "127.0.0.1:9090",
			expectError:  false,
			expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090},
		},
		{
			name:        "missing colon",
			input:       "localhost8080",
			expectError: true,
			errorMsg:    "need address in a form `host:port`",
		},
		{
			name:        "multiple colons without brackets",
			input:       "host:port:extra",
			expectError: true,
			errorMsg:    "need address in a form `host:port`",
		},
		{
			name:        "non-numeric port",
			input:       "localhost:abc",
			expectError: true,
			errorMsg:    "invalid syntax",
		},
		{
			name:        "negative port",
			input:       "localhost:-1",
			expectError: true,
			errorMsg:    "port number must be in range 1..65535",
		},
		{
			name:        "zero port",
			input:       "localhost:0",
			expectError: true,
			errorMsg:    "port number must be in range 1..65535",
		},
		{
			name:        "port out of range",
			input:       "localhost:70000",
			expectError: true,
			errorMsg:    "port number must be in range 1..65535",
		},
		{
			name:         "empty host",
			input:        ":9100",
			expectError:  false,
			expectedAddr: NetAddress{Host: "", Port: 9100},
		},
		{
			name:        "invalid IP address",
			input:       "invalid.host:8080",
			expectError: true,
			errorMsg:    "incorrect IP-address provided",
		},
		{
			name:        "empty string",
			input:       "",
			expectError: true,
			errorMsg:    "need address in a form `host:port`",
		},
		{
			name:        "only colon",
			input:       ":",
			expectError: true,
			errorMsg:    "invalid syntax",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := &NetAddress{}
			err := addr.Set(tt.input)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedAddr.Host, addr.Host)
				assert.Equal(t, tt.expectedAddr.Port, addr.Port)
			}
		})
	}
}

// TestParseFlags tests the ParseFlags function
func TestParseFlags(t *testing.T) {
	args := []string{
		"-endpoint", "http://game.local",
		"-account", "acc",
		"-app", "app",
		"-server-game-port", "9999",
		"-admin", "http://game.local:81",
		"-admin-timeout", "2s",
		"-time-slice", "1ms",
		"-idle", "3ms",
		"-worker", "messages",
		"-n", "12",
		"-w", "4",
		"-ramp-up", "1.5",
		"-worker-timeout", "9s",
		"-messages", "6",
		"-dashboard",
		"-scenarios", "kick, party,,",
		"-scenario-timeout", "45s",
		"-d", "file:runs.db",
		"-db-driver", "sqlite3",
		"-metrics", "127.0.0.1:9100",
		"-trace",
		"-log-level", "warn",
		"-client-log-dir", "logs",
		"-ccu-limit", "2",
		"-config", "cfg.json",
	}

	cfg, err := ParseFlags(args)
	require.NoError(t, err)

	assert.Equal(t, "http://game.local", cfg.Target.Endpoint)
	assert.Equal(t, "acc", cfg.Target.Account)
	assert.Equal(t, "app", cfg.Target.Application)
	assert.Equal(t, 9999, cfg.Target.ServerGamePort)
	assert.Equal(t, "http://game.local:81", cfg.Admin.Address)
	assert.Equal(t, 2*time.Second, cfg.Admin.RequestTimeout)
	assert.Equal(t, time.Millisecond, cfg.Dispatch.TimeSlice)
	assert.Equal(t, 3*time.Millisecond, cfg.Dispatch.Idle)
	assert.Equal(t, "messages", cfg.Stress.Worker)
	assert.Equal(t, 12, cfg.Stress.Iterations)
	assert.Equal(t, 4, cfg.Stress.ConcurrentWorkers)
	assert.InDelta(t, 1.5, cfg.Stress.RampUp, 0.0001)
	assert.Equal(t, 9*time.Second, cfg.Stress.WorkerTimeout)
	assert.Equal(t, 6, cfg.Stress.Messages)
	assert.True(t, cfg.Stress.Dashboard)
	assert.Equal(t, []string{"kick", "party"}, cfg.Scenario.Names)
	assert.Equal(t, 45*time.Second, cfg.Scenario.Timeout)
	assert.Equal(t, "file:runs.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "127.0.0.1:9100", cfg.Metrics.Address)
	assert.True(t, cfg.Tracing.Enabled)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "logs", cfg.Log.ClientDir)
	assert.Equal(t, 2, cfg.Loopback.CCULimit)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, err := ParseFlags([]string{"-c", "short.json"})
	require.NoError(t, err)
	assert.Equal(t, "short.json", cfg.JSONFilePath)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "bad metrics address", args: []string{"-metrics", "nowhere"}},
		{name: "bad int", args: []string{"-n", "x"}},
		{name: "bad duration", args: []string{"-idle", "later"}},
		{name: "unknown flag", args: []string{"-unknown"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args)
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
