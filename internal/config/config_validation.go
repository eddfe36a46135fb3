// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks the final merged config before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Target.Endpoint == "" || cfg.Target.Account == "" || cfg.Target.Application == "" {
		return fmt.Errorf("%w: endpoint, account and application are required", ErrInvalidTargetConfigs)
	}
	if cfg.Target.Driver != DriverLoopback {
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidTargetConfigs, cfg.Target.Driver)
	}
	if cfg.Target.ServerGamePort < 0 || cfg.Target.ServerGamePort > 65535 {
		return fmt.Errorf("%w: server game port %d", ErrInvalidTargetConfigs, cfg.Target.ServerGamePort)
	}

	if cfg.Admin.Address == "" || cfg.Admin.RequestTimeout <= 0 {
		return ErrInvalidAdminConfigs
	}

	if cfg.Dispatch.TimeSlice <= 0 || cfg.Dispatch.Idle <= 0 {
		return ErrInvalidDispatchConfigs
	}

	if cfg.Stress.Worker == "" || cfg.Stress.Iterations <= 0 || cfg.Stress.ConcurrentWorkers <= 0 ||
		cfg.Stress.RampUp < 0 || cfg.Stress.WorkerTimeout <= 0 || cfg.Stress.Messages < 0 {
		return ErrInvalidStressConfigs
	}

	if cfg.Scenario.Timeout <= 0 {
		return ErrInvalidScenarioConfigs
	}

	if cfg.Storage.DB.DSN != "" {
		switch cfg.Storage.DB.Driver {
		case DBDriverSQLite, DBDriverPostgres:
		default:
			return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
		}
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLogConfigs, err)
	}

	if cfg.Loopback.CCULimit < 0 {
		return ErrInvalidLoopbackConfigs
	}

	return nil
}
