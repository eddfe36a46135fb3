// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/gameflow-harness/models"
)

func renderBuildInfo(info models.AppBuildInfo) string {
	return "gameflow stresstool " + valueOrNA(info.BuildVersion()) + " (" + valueOrNA(info.BuildCommit()) + ", " + valueOrNA(info.BuildDate()) + ")"
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
