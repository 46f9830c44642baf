package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-movie-keeper/internal/logger"
	"github.com/MKhiriev/go-movie-keeper/internal/store"
	"github.com/MKhiriev/go-movie-keeper/internal/validators"
	"github.com/MKhiriev/go-movie-keeper/models"
)

type favoriteService struct {
	favoriteRepository store.FavoriteRepository
	validator          validators.Validator
	logger             *logger.Logger
}

func NewFavoriteService(favoriteRepository store.FavoriteRepository, logger *logger.Logger) FavoriteService {
	return &favoriteService{
		favoriteRepository: favoriteRepository,
		validator:          validators.NewFavoriteValidator(),
		logger:             logger,
	}
}

// GetFavorites implements [FavoriteService].
func (f *favoriteService) GetFavorites(ctx context.Context, userID int64) ([]string, error) {
	favorites, err := f.favoriteRepository.GetFavorites(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("favorites lookup failed: %w", err)
	}
	return favorites, nil
}

// AddFavorite implements [FavoriteService]. The movie ID must match the
// tt<digits> shape; duplicates surface as store.ErrFavoriteAlreadyExists.
func (f *favoriteService) AddFavorite(ctx context.Context, userID int64, movieID string) (models.Favorite, error) {
	log := logger.FromContext(ctx)

	if err := f.validator.Validate(ctx, models.Favorite{UserID: userID, MovieID: movieID}); err != nil {
		log.Debug().Err(err).Str("movieID", movieID).Msg("rejected invalid favorite")
		return models.Favorite{}, errors.Join(ErrInvalidDataProvided, err)
	}

	favorite, err := f.favoriteRepository.AddFavorite(ctx, userID, movieID)
	if err != nil {
		return models.Favorite{}, fmt.Errorf("adding favorite failed: %w", err)
	}
	return favorite, nil
}

// RemoveFavorite implements [FavoriteService].
func (f *favoriteService) RemoveFavorite(ctx context.Context, userID int64, movieID string) error {
	if err := f.validator.Validate(ctx, models.Favorite{UserID: userID, MovieID: movieID}); err != nil {
		return errors.Join(ErrInvalidDataProvided, err)
	}

	if err := f.favoriteRepository.RemoveFavorite(ctx, userID, movieID); err != nil {
		return fmt.Errorf("removing favorite failed: %w", err)
	}
	return nil
}
