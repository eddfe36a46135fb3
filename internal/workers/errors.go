// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import "errors"

var (
	ErrUnknownWorker = errors.New("unknown worker")
	ErrBadEcho       = errors.New("echo payload mismatch")
)
