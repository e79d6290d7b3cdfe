package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/co-script/internal/adapter"
	"github.com/MKhiriev/co-script/internal/config"
	"github.com/MKhiriev/co-script/internal/handler"
	"github.com/MKhiriev/co-script/internal/logger"
	"github.com/MKhiriev/co-script/internal/server"
	"github.com/MKhiriev/co-script/internal/service"
	"github.com/MKhiriev/co-script/internal/store"
	"github.com/MKhiriev/co-script/internal/workers"
	"github.com/MKhiriev/co-script/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("co-script-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if buildVersion != "" {
		cfg.App.Version = buildVersion
	}

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("db_driver", cfg.Storage.DB.Driver).
		Bool("redis", cfg.Storage.Redis.URL != "").
		Str("llm_provider", cfg.LLM.Provider).
		Dur("watchlist_sync_interval", cfg.Workers.WatchlistSyncInterval).
		Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	llm, err := adapter.NewLLMClient(ctx, cfg.LLM, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating llm client")
	}

	services, err := service.NewServices(storages, llm, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(services, cfg.Workers, log), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server exited with error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
