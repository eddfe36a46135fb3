// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/gameflow-harness/internal/stress"

type progressMsg struct {
	progress stress.Progress
}

type runFinishedMsg struct {
	err error
}
