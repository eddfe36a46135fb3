// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/MKhiriev/gameflow-harness/internal/app"
	"github.com/MKhiriev/gameflow-harness/internal/backend"
	"github.com/MKhiriev/gameflow-harness/internal/config"
	"github.com/MKhiriev/gameflow-harness/internal/logger"
	"github.com/MKhiriev/gameflow-harness/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()
	os.Exit(run(os.Args[1:]))
}

// run returns the process exit code so deferred closes happen before exit.
func run(args []string) int {
	log := logger.NewLogger("stresstool")
	cfg, err := config.GetStructuredConfig(args)
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		return 1
	}
	if err = logger.SetLevel(cfg.Log.Level); err != nil {
		log.Error().Err(err).Msg("invalid log level")
		return 1
	}

	if cfg.Stress.Dashboard {
		// the dashboard owns the terminal
		out, closeFn, err := dashboardLogOutput(cfg.Log.ClientDir)
		if err != nil {
			log.Error().Err(err).Msg("open log file")
			return 1
		}
		defer closeFn()
		log = logger.New(out, "stresstool")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provisioner, err := backend.New(cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating backend")
		return 1
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	tool := app.NewStressTool(cfg, provisioner, buildInfo, os.Stderr, log)
	if err = tool.Run(ctx); err != nil {
		log.Error().Err(err).Msg("stress run error")
		return 1
	}
	return 0
}

func dashboardLogOutput(dir string) (io.Writer, func(), error) {
	if dir == "" {
		return io.Discard, func() {}, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(filepath.Join(dir, "stresstool.logs.txt"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
