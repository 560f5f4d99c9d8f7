package main

import (
	"context"
	"fmt"

	"github.com/ledgerly/go-expense-tracker/internal/config"
	"github.com/ledgerly/go-expense-tracker/internal/credentials"
	handler "github.com/ledgerly/go-expense-tracker/internal/handler/http"
	"github.com/ledgerly/go-expense-tracker/internal/logger"
	"github.com/ledgerly/go-expense-tracker/internal/server"
	"github.com/ledgerly/go-expense-tracker/internal/service"
	"github.com/ledgerly/go-expense-tracker/internal/store"
	"github.com/ledgerly/go-expense-tracker/internal/workers"
	"github.com/ledgerly/go-expense-tracker/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("expense-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)

	lockoutTracker := credentials.NewMemoryLockoutTracker(cfg.Lockout)
	services := service.NewServices(storages, credentials.NewBcryptHasher(), lockoutTracker, cfg.Auth)

	router := handler.NewHandler(services, log).Init()

	srv, err := server.NewServer(router, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	backgroundWorkers := workers.NewWorkers(
		workers.NewLockoutJanitor(lockoutTracker, cfg.Lockout.JanitorInterval, log),
	)
	backgroundWorkers.Run(ctx)

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
