// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidTargetConfigs indicates a missing endpoint, account or
	// application, or an unsupported driver.
	ErrInvalidTargetConfigs = errors.New("invalid target configuration")
	// ErrInvalidAdminConfigs indicates a missing admin address or timeout.
	ErrInvalidAdminConfigs = errors.New("invalid admin configuration")
	// ErrInvalidDispatchConfigs indicates a non-positive time slice or idle.
	ErrInvalidDispatchConfigs = errors.New("invalid dispatch configuration")
	// ErrInvalidStressConfigs indicates invalid load parameters.
	ErrInvalidStressConfigs   = errors.New("invalid stress configuration")
	ErrInvalidScenarioConfigs = errors.New("invalid scenario configuration")
	// ErrInvalidStorageConfigs indicates an unsupported database driver.
	ErrInvalidStorageConfigs  = errors.New("invalid storage configuration")
	ErrInvalidLogConfigs      = errors.New("invalid log configuration")
	ErrInvalidLoopbackConfigs = errors.New("invalid loopback configuration")
)
