package service

import (
	"github.com/MKhiriev/go-movie-keeper/internal/adapter/omdb"
	"github.com/MKhiriev/go-movie-keeper/internal/cache"
	"github.com/MKhiriev/go-movie-keeper/internal/config"
	"github.com/MKhiriev/go-movie-keeper/internal/logger"
	"github.com/MKhiriev/go-movie-keeper/internal/store"
)

type Services struct {
	AuthService     AuthService
	MovieService    MovieService
	FavoriteService FavoriteService
}

func NewServices(repositories *store.Repositories, gateway omdb.MovieGateway, movieCache cache.Cache, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(repositories.UserRepository, repositories.CredentialStore, cfg.App, logger),
		MovieService:    NewMovieService(gateway, movieCache, cfg.Cache, logger),
		FavoriteService: NewFavoriteService(repositories.FavoriteRepository, logger),
	}
}
