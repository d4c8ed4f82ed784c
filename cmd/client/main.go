// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-post-client/internal/client"
	"github.com/MKhiriev/go-post-client/internal/config"
	"github.com/MKhiriev/go-post-client/internal/logger"
	"github.com/MKhiriev/go-post-client/internal/service"
	"github.com/MKhiriev/go-post-client/internal/store"
	"github.com/MKhiriev/go-post-client/internal/tui"
	"github.com/MKhiriev/go-post-client/internal/workers"
	"github.com/MKhiriev/go-post-client/models"
)

const appRole = "go-post-client"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger(appRole, os.Stderr).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger(appRole, cfg.App.LogFile)
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services, err := service.NewClientServices(cfg.Adapter, storages.TokenStore, log)
	if err != nil {
		_ = storages.Close()
		log.Fatal().Err(err).Msg("create client services")
	}

	bg := workers.NewClientWorkers(cfg.Workers, services.Session, log)
	ui := tui.New(services, buildInfo, log)

	app, err := client.NewApp(services.Session, ui, bg, storages, log)
	if err != nil {
		_ = storages.Close()
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		stop()
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
