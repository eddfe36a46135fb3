// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors StructuredConfig for JSON files. Durations
// accept both strings ("5s") and integer nanoseconds.
type StructuredJSONConfig struct {
	Target struct {
		Endpoint       string `json:"endpoint"`
		Account        string `json:"account"`
		Application    string `json:"application"`
		ServerGamePort int    `json:"server_game_port"`
		Driver         string `json:"driver"`
	} `json:"target,omitempty"`

	Admin struct {
		Address        string   `json:"address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"admin,omitempty"`

	Dispatch struct {
		TimeSlice Duration `json:"time_slice"`
		Idle      Duration `json:"idle"`
	} `json:"dispatch,omitempty"`

	Stress struct {
		Worker            string   `json:"worker"`
		Iterations        int      `json:"iterations"`
		ConcurrentWorkers int      `json:"concurrent_workers"`
		RampUp            float64  `json:"ramp_up"`
		WorkerTimeout     Duration `json:"worker_timeout"`
		Messages          int      `json:"messages"`
		Dashboard         bool     `json:"dashboard"`
	} `json:"stress,omitempty"`

	Scenario struct {
		Names   []string `json:"names"`
		Timeout Duration `json:"timeout"`
	} `json:"scenario,omitempty"`

	Storage struct {
		DB struct {
			DSN    string `json:"dsn"`
			Driver string `json:"driver"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Metrics struct {
		Address string `json:"address"`
	} `json:"metrics,omitempty"`

	Tracing struct {
		Enabled     bool   `json:"enabled"`
		ServiceName string `json:"service_name"`
	} `json:"tracing,omitempty"`

	Log struct {
		Level     string `json:"level"`
		ClientDir string `json:"client_dir"`
	} `json:"log,omitempty"`

	Loopback struct {
		CCULimit          int    `json:"ccu_limit"`
		AdminAddress      string `json:"admin_address"`
		PeerConfiguration string `json:"peer_configuration"`
	} `json:"loopback,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Target: Target{
			Endpoint:       jsonCfg.Target.Endpoint,
			Account:        jsonCfg.Target.Account,
			Application:    jsonCfg.Target.Application,
			ServerGamePort: jsonCfg.Target.ServerGamePort,
			Driver:         jsonCfg.Target.Driver,
		},
		Admin: Admin{
			Address:        jsonCfg.Admin.Address,
			RequestTimeout: time.Duration(jsonCfg.Admin.RequestTimeout),
		},
		Dispatch: Dispatch{
			TimeSlice: time.Duration(jsonCfg.Dispatch.TimeSlice),
			Idle:      time.Duration(jsonCfg.Dispatch.Idle),
		},
		Stress: Stress{
			Worker:            jsonCfg.Stress.Worker,
			Iterations:        jsonCfg.Stress.Iterations,
			ConcurrentWorkers: jsonCfg.Stress.ConcurrentWorkers,
			RampUp:            jsonCfg.Stress.RampUp,
			WorkerTimeout:     time.Duration(jsonCfg.Stress.WorkerTimeout),
			Messages:          jsonCfg.Stress.Messages,
			Dashboard:         jsonCfg.Stress.Dashboard,
		},
		Scenario: Scenario{
			Names:   jsonCfg.Scenario.Names,
			Timeout: time.Duration(jsonCfg.Scenario.Timeout),
		},
		Storage: Storage{
			DB: DB{
				DSN:    jsonCfg.Storage.DB.DSN,
				Driver: jsonCfg.Storage.DB.Driver,
			},
		},
		Metrics: Metrics{
			Address: jsonCfg.Metrics.Address,
		},
		Tracing: Tracing{
			Enabled:     jsonCfg.Tracing.Enabled,
			ServiceName: jsonCfg.Tracing.ServiceName,
		},
		Log: Log{
			Level:     jsonCfg.Log.Level,
			ClientDir: jsonCfg.Log.ClientDir,
		},
		Loopback: Loopback{
			CCULimit:          jsonCfg.Loopback.CCULimit,
			AdminAddress:      jsonCfg.Loopback.AdminAddress,
			PeerConfiguration: jsonCfg.Loopback.PeerConfiguration,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
