package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-movie-keeper/internal/adapter/omdb"
	"github.com/MKhiriev/go-movie-keeper/internal/cache"
	"github.com/MKhiriev/go-movie-keeper/internal/config"
	httphandler "github.com/MKhiriev/go-movie-keeper/internal/handler/http"
	"github.com/MKhiriev/go-movie-keeper/internal/logger"
	"github.com/MKhiriev/go-movie-keeper/internal/server"
	"github.com/MKhiriev/go-movie-keeper/internal/service"
	"github.com/MKhiriev/go-movie-keeper/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("movie-keeper-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectSQLite(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying database migrations")
	}

	movieCache := newCache(ctx, cfg.Cache, log)

	gateway, err := omdb.NewClient(cfg.OMDB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating metadata gateway")
	}

	repositories := store.NewRepositories(db, log)
	services := service.NewServices(repositories, gateway, movieCache, *cfg, log)
	handler := httphandler.NewHandler(services, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()

	// HTTP connections are drained by now; release backends in reverse
	// dependency order.
	if err := db.Close(); err != nil {
		log.Err(err).Msg("error closing database")
	}
	if err := movieCache.Close(); err != nil {
		log.Err(err).Msg("error closing cache")
	}
}

// newCache picks the cache backend from configuration: Redis when an address
// is set, a no-op pass-through otherwise.
func newCache(ctx context.Context, cfg config.Cache, log *logger.Logger) cache.Cache {
	if cfg.RedisAddress == "" {
		log.Info().Msg("no redis address configured, running uncached")
		return cache.NewNop()
	}

	redisCache, err := cache.NewRedisCache(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to redis")
	}
	return redisCache
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
