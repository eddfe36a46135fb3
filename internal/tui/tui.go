// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders a terminal dashboard of a running stress test.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/gameflow-harness/internal/config"
	"github.com/MKhiriev/gameflow-harness/internal/logger"
	"github.com/MKhiriev/gameflow-harness/internal/stress"
	"github.com/MKhiriev/gameflow-harness/models"
)

var ErrUserQuit = errors.New("dashboard closed by user")

type TUI struct {
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
	opts      []tea.ProgramOption
}

func New(buildInfo models.AppBuildInfo, log *logger.Logger, opts ...tea.ProgramOption) *TUI {
	if log == nil {
		log = logger.Nop()
	}
	return &TUI{buildInfo: buildInfo, logger: log, opts: opts}
}

// Dashboard shows the progress of run until progress is closed and the
// user leaves. The final run error is read from done once progress is
// closed. Leaving before the run finished returns ErrUserQuit.
func (t *TUI) Dashboard(ctx context.Context, runID string, cfg config.Stress, progress <-chan stress.Progress, done <-chan error) error {
	model := newDashboardModel(t.buildInfo, runID, cfg, progress, done)

	opts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, t.opts...)
	finalModel, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(dashboardModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser && !result.finished {
		t.logger.Info().Str("run_id", runID).Msg("dashboard closed before the run finished")
		return ErrUserQuit
	}
	return result.runErr
}
