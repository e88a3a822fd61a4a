// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command activationctl drives a local Tightlock activation service: it
// probes the connection, optionally submits the example config, prints the
// latest config and triggers an activation.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/audience-sync/internal/adapter"
	"github.com/MKhiriev/audience-sync/internal/config"
	"github.com/MKhiriev/audience-sync/internal/logger"
	"github.com/MKhiriev/audience-sync/internal/report"
	"github.com/MKhiriev/audience-sync/internal/service"
	"github.com/MKhiriev/audience-sync/models"
)

const appName = "activationctl"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger(appName)
	printBuildInfo(log)

	cfg, err := config.GetActivationConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log.SetLevel(cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg, log)
	stop()

	if err != nil {
		log.Fatal().Err(err).Msg("activationctl run error")
	}
}

func run(ctx context.Context, cfg *config.ActivationConfig, log *logger.Logger) error {
	activationAdapter, err := adapter.NewActivationAdapter(cfg.Activation, log)
	if err != nil {
		return fmt.Errorf("create activation adapter: %w", err)
	}

	activations, err := service.NewActivationService(activationAdapter, log)
	if err != nil {
		return fmt.Errorf("create activation service: %w", err)
	}

	status, err := activations.Probe(ctx)
	if err != nil {
		fmt.Println(report.Error("CONNECTION", err))
		return err
	}
	fmt.Println(report.ConnectionStatus(status))

	if cfg.Activation.CreateExample {
		dest, err := models.NewDestination(cfg.Destination.Settings())
		if err != nil {
			return fmt.Errorf("create example destination: %w", err)
		}

		example, err := activations.ExampleConfig(dest)
		if err != nil {
			return fmt.Errorf("build example config: %w", err)
		}

		resp, err := activations.CreateConfig(ctx, example)
		if err != nil {
			fmt.Println(report.Error("CREATE CONFIG", err))
			return err
		}
		fmt.Println(report.JSON("CREATE CONFIG", resp))
	}

	latest, err := activations.LatestConfig(ctx)
	if err != nil {
		fmt.Println(report.Error("LATEST CONFIG", err))
		return err
	}
	fmt.Println(report.ActivationConfig("LATEST CONFIG", latest))

	if cfg.Activation.TriggerName == "" {
		log.Info().Msg("no activation to trigger")
		return nil
	}

	resp, err := activations.Trigger(ctx, cfg.Activation.TriggerName, cfg.Run.DryRun)
	if err != nil {
		fmt.Println(report.Error("TRIGGER", err))
		return err
	}
	fmt.Println(report.JSON("TRIGGER "+cfg.Activation.TriggerName, resp))

	return nil
}

func printBuildInfo(log *logger.Logger) {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	appInfo, err := service.NewAppInfoService(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error reading build info")
	}

	fmt.Println(report.BuildInfo(appName, appInfo.GetBuildInfo(context.Background())))
}
