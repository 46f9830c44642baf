package validators

import (
	"context"
	"regexp"

	"github.com/MKhiriev/go-movie-keeper/models"
)

// movieIDPattern is the shape of every identifier accepted into a favorites
// list: "tt" followed by one or more digits, nothing else.
var movieIDPattern = regexp.MustCompile(`^tt\d+$`)

type FavoriteValidator struct {
}

func NewFavoriteValidator() Validator {
	return &FavoriteValidator{}
}

func (v *FavoriteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Favorite:
		return v.validateFavorite(ctx, value, fields...)
	case *models.Favorite:
		return v.validateFavorite(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *FavoriteValidator) validateFavorite(_ context.Context, favorite models.Favorite, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldMovieID}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if favorite.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldMovieID:
			if !movieIDPattern.MatchString(favorite.MovieID) {
				return ErrInvalidMovieID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
