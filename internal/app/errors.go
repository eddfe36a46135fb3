// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import "errors"

// ErrScenariosFailed is returned by SDKCheck.Run when at least one scenario
// did not succeed.
var ErrScenariosFailed = errors.New("scenarios failed")
