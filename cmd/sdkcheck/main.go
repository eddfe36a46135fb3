// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
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

	log := logger.NewLogger("sdkcheck")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.Log.Level); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provisioner, err := backend.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating backend")
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	check := app.NewSDKCheck(cfg, provisioner, nil, buildInfo, os.Stderr, log)
	err = check.Run(ctx)

	for _, res := range check.Results() {
		status := "PASS"
		if !res.Succeeded {
			status = "FAIL"
		}
		fmt.Printf("%s  %-26s %s", status, res.Name, res.Duration)
		if res.Err != nil {
			fmt.Printf("  %v", res.Err)
		}
		fmt.Println()
	}

	if err != nil {
		log.Error().Err(err).Msg("sdk check failed")
		stop()
		os.Exit(1)
	}
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
