package service

import (
	"context"

	"github.com/MKhiriev/go-movie-keeper/internal/adapter/omdb"
	"github.com/MKhiriev/go-movie-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// CredentialStrategy verifies one kind of credential material and resolves
// it to an authenticated principal. The set of strategies is closed: local
// (email+password) and token (bearer JWT). Every failure mode that could
// reveal whether an account exists is collapsed into ErrInvalidCredentials.
type CredentialStrategy interface {
	Verify(ctx context.Context, credentials models.Credentials) (models.Principal, error)
}

// AuthService handles account registration, credential verification and the
// JWT token lifecycle.
type AuthService interface {
	Register(ctx context.Context, email, password, name string) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.Principal, error)
	CreateToken(ctx context.Context, principal models.Principal) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Principal, error)
}

// MovieService fronts the external metadata gateway with the cache-aside
// layer. Results are byte-identical whether they come from the cache or
// from the gateway.
type MovieService interface {
	Search(ctx context.Context, query omdb.SearchQuery) (models.MovieSearchResult, error)
	GetByID(ctx context.Context, imdbID string) (models.Movie, error)
}

// FavoriteService manages the per-user favorites list.
type FavoriteService interface {
	GetFavorites(ctx context.Context, userID int64) ([]string, error)
	AddFavorite(ctx context.Context, userID int64, movieID string) (models.Favorite, error)
	RemoveFavorite(ctx context.Context, userID int64, movieID string) error
}
