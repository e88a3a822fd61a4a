// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command audiencesync uploads hashed CRM records to a Meta custom audience.
//
// With -history N it prints the last N recorded runs instead.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/audience-sync/internal/adapter"
	"github.com/MKhiriev/audience-sync/internal/config"
	"github.com/MKhiriev/audience-sync/internal/logger"
	"github.com/MKhiriev/audience-sync/internal/records"
	"github.com/MKhiriev/audience-sync/internal/report"
	"github.com/MKhiriev/audience-sync/internal/service"
	"github.com/MKhiriev/audience-sync/internal/store"
	"github.com/MKhiriev/audience-sync/models"
)

const appName = "audiencesync"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

var errNoResult = errors.New("sync finished without a result")

func main() {
	log := logger.NewLogger(appName)
	printBuildInfo(log)

	cfg, err := config.GetSyncConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log.SetLevel(cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg, log)
	stop()

	if errors.Is(err, errNoResult) {
		os.Exit(1)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("audiencesync run error")
	}
}

func run(ctx context.Context, cfg *config.SyncConfig, log *logger.Logger) error {
	var runs store.RunRepository
	if cfg.Storage.DB.DSN != "" {
		db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
		if err != nil {
			return fmt.Errorf("connect run history: %w", err)
		}
		defer db.Close()

		runs = store.NewRunRepository(db, log)
	}

	if cfg.Run.HistoryLimit > 0 {
		history, err := runs.ListRuns(ctx, cfg.Run.HistoryLimit)
		if err != nil {
			return fmt.Errorf("list runs: %w", err)
		}
		fmt.Println(report.RunHistory(history))
		return nil
	}

	dest, err := models.NewDestination(cfg.DestinationSettings())
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}

	graph, err := adapter.NewGraphAdapter(cfg.Graph, log)
	if err != nil {
		return fmt.Errorf("create graph adapter: %w", err)
	}

	syncService, err := service.NewAudienceSyncService(dest, graph, runs, log)
	if err != nil {
		return fmt.Errorf("create audience sync service: %w", err)
	}

	userRecords, err := records.Load(cfg.Run.RecordsFile)
	if err != nil {
		return fmt.Errorf("load records: %w", err)
	}

	result := syncService.SendData(ctx, userRecords, cfg.Run.DryRun)
	fmt.Println(report.SendResult(result))
	if result == nil {
		return errNoResult
	}

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
