package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/tahiry-dev/wildlife-atlas/internal/catalog"
	"github.com/tahiry-dev/wildlife-atlas/internal/config"
	handlerhttp "github.com/tahiry-dev/wildlife-atlas/internal/handler/http"
	"github.com/tahiry-dev/wildlife-atlas/internal/logger"
	"github.com/tahiry-dev/wildlife-atlas/internal/server"
	"github.com/tahiry-dev/wildlife-atlas/internal/service"
	"github.com/tahiry-dev/wildlife-atlas/internal/store"
	"github.com/tahiry-dev/wildlife-atlas/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("wildlife-atlas-server")

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("error loading .env file")
	}

	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()
	db, err := store.NewConnectPostgres(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying database migrations")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, cfg, log)

	// The catalog stays empty when the load fails; the read endpoints then
	// report not-found until a restart with the dataset in place.
	cat := catalog.NewCatalog()
	loader := catalog.NewLoader(cfg.Dataset, log)
	if snapshot, err := loader.Load(); err != nil {
		log.Error().Err(err).Msg("failed to load animals dataset")
	} else {
		cat.Replace(snapshot)
		log.Info().Int("animals", snapshot.Len()).Msg("animals dataset loaded")
	}

	handler := handlerhttp.NewHandler(services, cat, cfg.Dataset.StaticDir, log)

	corsWrapper := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	srv := server.NewServer(corsWrapper.Handler(handler.Init()), cfg.Server, log)
	if err := srv.Run(); err != nil {
		log.Fatal().Err(err).Msg("error running server")
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
