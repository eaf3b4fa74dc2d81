package main

import (
	"context"
	"fmt"
	"time"

	"github.com/docuvault/go-doc-manager/internal/adapter"
	"github.com/docuvault/go-doc-manager/internal/config"
	httphandler "github.com/docuvault/go-doc-manager/internal/handler/http"
	"github.com/docuvault/go-doc-manager/internal/logger"
	"github.com/docuvault/go-doc-manager/internal/server"
	"github.com/docuvault/go-doc-manager/internal/service"
	"github.com/docuvault/go-doc-manager/internal/store"
	"github.com/docuvault/go-doc-manager/internal/workers"
	"github.com/docuvault/go-doc-manager/migrations"
	"github.com/joho/godotenv"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("doc-manager-server")

	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	if err := migrations.Migrate(storages.DB.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	searchClient, err := adapter.NewHTTPSearchClient(cfg.Search, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating search client")
	}

	services := service.NewServices(storages, searchClient, cfg, log)
	handler := httphandler.NewHandler(services, log)

	otpValidity := time.Duration(cfg.App.OTPValidityHours) * time.Hour
	cleanup := workers.NewOTPCleanupWorker(storages.UserRepository, cfg.App.OTPCleanupInterval, otpValidity, log)
	workers.NewWorkers(cleanup).Run(ctx)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
