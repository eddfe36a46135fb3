// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/gameflow-harness/internal/config"
	"github.com/MKhiriev/gameflow-harness/internal/stress"
	"github.com/MKhiriev/gameflow-harness/models"
)

const historyRows = 12

type dashboardModel struct {
	buildInfo models.AppBuildInfo
	runID     string
	cfg       config.Stress

	progressCh <-chan stress.Progress
	done       <-chan error

	spinner spinner.Model
	bar     progress.Model
	history table.Model

	records   []models.RunRecord
	succeeded int
	total     int

	finished   bool
	runErr     error
	quitByUser bool
}

func newDashboardModel(info models.AppBuildInfo, runID string, cfg config.Stress, ch <-chan stress.Progress, done <-chan error) dashboardModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 5},
			{Title: "success", Width: 8},
			{Title: "avg", Width: 10},
			{Title: "min", Width: 10},
			{Title: "max", Width: 10},
			{Title: "startup", Width: 10},
			{Title: "execution", Width: 11},
		}),
		table.WithHeight(historyRows),
		table.WithFocused(true),
	)
	km := table.DefaultKeyMap()
	km.LineUp = keys.up
	km.LineDown = keys.down
	t.KeyMap = km

	return dashboardModel{
		buildInfo:  info,
		runID:      runID,
		cfg:        cfg,
		progressCh: ch,
		done:       done,
		spinner:    s,
		bar:        progress.New(progress.WithDefaultGradient(), progress.WithWidth(50)),
		history:    t,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitForProgress())
}

// waitForProgress delivers the next iteration, or the run result once the
// progress channel is closed.
func (m dashboardModel) waitForProgress() tea.Cmd {
	ch, done := m.progressCh, m.done
	return func() tea.Msg {
		p, ok := <-ch
		if !ok {
			var err error
			if done != nil {
				err = <-done
			}
			return runFinishedMsg{err: err}
		}
		return progressMsg{progress: p}
	}
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			m.quitByUser = true
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.history, cmd = m.history.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.bar.Width = max(10, min(msg.Width-20, 80))
		return m, nil

	case progressMsg:
		m.addRecord(msg.progress.Record)
		if msg.progress.Iterations > 0 {
			m.cfg.Iterations = msg.progress.Iterations
		}
		return m, m.waitForProgress()

	case runFinishedMsg:
		m.finished = true
		m.runErr = msg.err
		return m, nil

	case spinner.TickMsg:
		if m.finished {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case progress.FrameMsg:
		pm, cmd := m.bar.Update(msg)
		m.bar = pm.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *dashboardModel) addRecord(rec models.RunRecord) {
	m.records = append(m.records, rec)
	m.succeeded += rec.Stats.Succeeded
	m.total += rec.Stats.Total

	rows := make([]table.Row, 0, historyRows)
	for i := len(m.records) - 1; i >= 0 && len(rows) < historyRows; i-- {
		r := m.records[i]
		rows = append(rows, table.Row{
			strconv.Itoa(r.Iteration + 1),
			formatPercent(r.Stats.SuccessRate),
			formatDuration(r.Stats.Avg),
			formatDuration(r.Stats.Min),
			formatDuration(r.Stats.Max),
			formatDuration(r.StartupTime),
			formatDuration(r.ExecutionTime),
		})
	}
	m.history.SetRows(rows)
}

// completion is the share of iterations done, in [0, 1].
func (m dashboardModel) completion() float64 {
	if m.cfg.Iterations <= 0 {
		return 0
	}
	return min(1, float64(len(m.records))/float64(m.cfg.Iterations))
}

func (m dashboardModel) overallRate() float64 {
	if m.total == 0 {
		return 0
	}
	return float64(m.succeeded) / float64(m.total)
}

func (m dashboardModel) View() string {
	var b strings.Builder

	status := m.spinner.View() + " running"
	switch {
	case m.finished && m.runErr != nil:
		status = errorStyle.Render("failed: " + humanizeRunError(m.runErr))
	case m.finished:
		status = okStyle.Render("finished")
	}

	fmt.Fprintf(&b, "run %s  worker %s  %d x %d workers\n", fitText(m.runID, 36), m.cfg.Worker, m.cfg.Iterations, m.cfg.ConcurrentWorkers)
	fmt.Fprintf(&b, "%s\n\n", status)
	fmt.Fprintf(&b, "%s  %d/%d\n\n", m.bar.ViewAs(m.completion()), len(m.records), m.cfg.Iterations)

	if n := len(m.records); n > 0 {
		last := m.records[n-1]
		stats := lipgloss.JoinHorizontal(lipgloss.Top,
			statBoxStyle.Render("success rate\n"+formatPercent(last.Stats.SuccessRate)),
			statBoxStyle.Render("avg\n"+formatDuration(last.Stats.Avg)),
			statBoxStyle.Render("min\n"+formatDuration(last.Stats.Min)),
			statBoxStyle.Render("max\n"+formatDuration(last.Stats.Max)),
			statBoxStyle.Render("overall\n"+formatPercent(m.overallRate())),
		)
		b.WriteString(stats)
		b.WriteString("\n\n")
	}
	b.WriteString(m.history.View())

	help := "↑/↓: scroll  q: quit"
	if !m.finished {
		help = "↑/↓: scroll  q: stop and quit"
	}
	return renderPage(renderBuildInfo(m.buildInfo), b.String(), help)
}
