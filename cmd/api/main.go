package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/arboretum/internal/config"
	"github.com/MrJamesThe3rd/arboretum/internal/database"
	"github.com/MrJamesThe3rd/arboretum/internal/dataset"
	"github.com/MrJamesThe3rd/arboretum/internal/dataset/seed"
	"github.com/MrJamesThe3rd/arboretum/internal/dataset/store"
	"github.com/MrJamesThe3rd/arboretum/internal/export"
	arbHttp "github.com/MrJamesThe3rd/arboretum/internal/http"
	clientHandler "github.com/MrJamesThe3rd/arboretum/internal/http/client"
	dashboardHandler "github.com/MrJamesThe3rd/arboretum/internal/http/dashboard"
	exportHandler "github.com/MrJamesThe3rd/arboretum/internal/http/export"
	importHandler "github.com/MrJamesThe3rd/arboretum/internal/http/importcsv"
	snapshotHandler "github.com/MrJamesThe3rd/arboretum/internal/http/snapshot"
	"github.com/MrJamesThe3rd/arboretum/internal/importer"
	"github.com/MrJamesThe3rd/arboretum/internal/matching"
	matchingStore "github.com/MrJamesThe3rd/arboretum/internal/matching/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	loc, err := cfg.Location()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	importService := importer.NewService()

	repo, mappings, closeRepo, err := openRepository(cfg, importService)
	if err != nil {
		slog.Error("failed to open data source", "source", cfg.Data.Source, "error", err)
		os.Exit(1)
	}
	defer closeRepo()

	datasetService := dataset.NewService(repo)
	matchingService := matching.NewService(mappings)
	exportService := export.NewService()

	snap, err := datasetService.Reload(context.Background())
	if err != nil {
		slog.Error("failed to load snapshot", "error", err)
		os.Exit(1)
	}

	if err := matchingService.LearnFrom(context.Background(), snap.Transactions); err != nil {
		slog.Warn("failed to learn categories", "error", err)
	}

	var (
		dashboardH = dashboardHandler.NewHandler(datasetService, loc, cfg.Dashboard.UpcomingTaskLimit)
		clientH    = clientHandler.NewHandler(datasetService)
		snapshotH  = snapshotHandler.NewHandler(datasetService)
		importH    = importHandler.NewHandler(importService, matchingService, datasetService)
		exportH    = exportHandler.NewHandler(datasetService, exportService, loc)
	)

	router := arbHttp.New(cfg.Server.CORSOrigins, dashboardH, clientH, snapshotH, importH, exportH)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "app", cfg.App.Name, "port", srv.Addr, "source", cfg.Data.Source)

	if err := srv.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func openRepository(
	cfg *config.Config,
	imp *importer.Service,
) (dataset.Repository, matching.Repository, func(), error) {
	if cfg.Data.Source != config.SourcePostgres {
		return seed.New(cfg.Data.SeedPath, cfg.Data.LedgerPath, imp), matching.NewMemoryStore(), func() {}, nil
	}

	db, err := database.New(context.Background(), cfg.ConnectionString())
	if err != nil {
		return nil, nil, nil, err
	}

	return store.New(db), matchingStore.New(db), func() { db.Close() }, nil
}
