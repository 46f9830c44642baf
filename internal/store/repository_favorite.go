package store

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-movie-keeper/internal/logger"
	"github.com/MKhiriev/go-movie-keeper/models"
)

type favoriteRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewFavoriteRepository(db *DB, logger *logger.Logger) *favoriteRepository {
	logger.Debug().Msg("FavoriteRepository created")
	return &favoriteRepository{
		db:     db,
		logger: logger,
	}
}

// GetFavorites lists the movie IDs favorited by the given user, oldest
// first. A user with no favorites yields an empty slice, never nil, so
// the HTTP layer serialises it as [] rather than null.
func (r *favoriteRepository) GetFavorites(ctx context.Context, userID int64) ([]string, error) {
	query, args, err := sq.Select("movie_id").
		From(models.Favorite{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at ASC", "favorite_id ASC").
		ToSql()
	if err != nil {
		r.logger.Err(err).Str("func", "*favoriteRepository.GetFavorites").Msg("error: building query")
		return nil, errors.Join(ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "*favoriteRepository.GetFavorites").Msg("error: executing query")
		return nil, errors.Join(ErrExecutingQuery, err)
	}
	defer rows.Close()

	movieIDs := make([]string, 0)
	for rows.Next() {
		var movieID string
		if err := rows.Scan(&movieID); err != nil {
			r.logger.Err(err).Str("func", "*favoriteRepository.GetFavorites").Msg("error: scanning rows")
			return nil, errors.Join(ErrScanningRows, err)
		}
		movieIDs = append(movieIDs, movieID)
	}
	if err := rows.Err(); err != nil {
		r.logger.Err(err).Str("func", "*favoriteRepository.GetFavorites").Msg("error: iterating rows")
		return nil, errors.Join(ErrScanningRows, err)
	}

	return movieIDs, nil
}

// AddFavorite records a (user, movie) pair. Favoriting the same movie
// twice is a conflict: the unique constraint violation is translated
// into ErrFavoriteAlreadyExists. A foreign-key violation means the user
// row vanished under us and maps onto ErrUserNotFound.
func (r *favoriteRepository) AddFavorite(ctx context.Context, userID int64, movieID string) (models.Favorite, error) {
	row := r.db.QueryRowContext(ctx, addFavorite, userID, movieID)
	if err := row.Err(); err != nil {
		r.logger.Err(err).Str("func", "*favoriteRepository.AddFavorite").Msg("error: row is nil")
		return models.Favorite{}, classifyFavoriteError(err)
	}

	var favorite models.Favorite
	if err := row.Scan(&favorite.FavoriteID, &favorite.UserID, &favorite.MovieID, &favorite.CreatedAt); err != nil {
		r.logger.Err(err).Str("func", "*favoriteRepository.AddFavorite").Msg("error: scanning row")
		return models.Favorite{}, classifyFavoriteError(err)
	}

	return favorite, nil
}

// RemoveFavorite deletes a (user, movie) pair. Removing a movie that was
// never favorited returns ErrFavoriteNotFound, detected via the affected
// row count.
func (r *favoriteRepository) RemoveFavorite(ctx context.Context, userID int64, movieID string) error {
	result, err := r.db.ExecContext(ctx, removeFavorite, userID, movieID)
	if err != nil {
		r.logger.Err(err).Str("func", "*favoriteRepository.RemoveFavorite").Msg("error: executing statement")
		return errors.Join(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		r.logger.Err(err).Str("func", "*favoriteRepository.RemoveFavorite").Msg("error: rows affected")
		return errors.Join(ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrFavoriteNotFound
	}

	return nil
}

func classifyFavoriteError(err error) error {
	switch {
	case isUniqueViolation(err):
		return ErrFavoriteAlreadyExists
	case isForeignKeyViolation(err):
		return ErrUserNotFound
	default:
		return fmt.Errorf("unexpected DB error: %w", err)
	}
}
