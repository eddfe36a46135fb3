// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/gameflow-harness/internal/logger"
	"github.com/MKhiriev/gameflow-harness/internal/metrics"
	"github.com/MKhiriev/gameflow-harness/internal/store"
	"github.com/MKhiriev/gameflow-harness/models"
)

type Handler struct {
	// runs is nil when run history is disabled.
	runs      store.RunRepository
	metrics   *metrics.Metrics
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func NewHandler(runs store.RunRepository, m *metrics.Metrics, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Bool("history", runs != nil).Msg("http handler created")
	return &Handler{
		runs:      runs,
		metrics:   m,
		buildInfo: buildInfo,
		logger:    logger,
	}
}
