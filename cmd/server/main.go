package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cred-pool/internal/config"
	"github.com/MKhiriev/go-cred-pool/internal/crypto"
	"github.com/MKhiriev/go-cred-pool/internal/handler"
	"github.com/MKhiriev/go-cred-pool/internal/logger"
	"github.com/MKhiriev/go-cred-pool/internal/server"
	"github.com/MKhiriev/go-cred-pool/internal/service"
	"github.com/MKhiriev/go-cred-pool/internal/store"
	"github.com/MKhiriev/go-cred-pool/internal/workers"
	"github.com/MKhiriev/go-cred-pool/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("cred-pool-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping debug")
	}

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Int("batch_max_items", cfg.Batch.MaxItems).
		Msg("received configs")

	storages, db, err := store.NewStorages(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer db.Close()

	sealer, err := crypto.NewSecretSealer(cfg.App.SecretKey, cfg.App.HashKey)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating secret sealer")
	}

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(storages, sealer, *cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	var reporter workers.HealthReporter
	if handlers.GRPC != nil {
		reporter = handlers.GRPC
	}
	bg := workers.NewWorkers(storages.CredentialRepository, reporter, cfg.Workers, log)

	srv, err := server.NewServer(handlers, bg, cfg.Server, log)
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
