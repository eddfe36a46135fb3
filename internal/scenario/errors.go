// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package scenario

import "errors"

var (
	// ErrUnknownScenario is returned for a name absent from the registry.
	ErrUnknownScenario = errors.New("unknown scenario")
	// ErrDuplicateScenario is returned when a name is registered twice.
	ErrDuplicateScenario = errors.New("duplicate scenario")
	// ErrAssertion wraps every failed expectation of a scenario.
	ErrAssertion = errors.New("assertion failed")
)
