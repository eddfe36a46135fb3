// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stress

import (
	"time"

	"github.com/MKhiriev/gameflow-harness/models"
)

// Compute aggregates results. Avg, Min and Max only account for successful
// results and are zero when none succeeded; SuccessRate is zero for an
// empty slice.
func Compute(results []models.Result) models.Stats {
	stats := models.Stats{Total: len(results)}

	var sum time.Duration
	for _, r := range results {
		if !r.Success {
			continue
		}
		if stats.Succeeded == 0 || r.Duration < stats.Min {
			stats.Min = r.Duration
		}
		if r.Duration > stats.Max {
			stats.Max = r.Duration
		}
		sum += r.Duration
		stats.Succeeded++
	}

	if stats.Succeeded > 0 {
		stats.Avg = sum / time.Duration(stats.Succeeded)
	}
	if stats.Total > 0 {
		stats.SuccessRate = float64(stats.Succeeded) / float64(stats.Total)
	}
	return stats
}
