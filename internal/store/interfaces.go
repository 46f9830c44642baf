package store

import (
	"context"

	"github.com/MKhiriev/go-movie-keeper/models"
)

// UserRepository is the hash-free data-access surface over the users table.
// Every returned user has the password hash stripped at the repository
// boundary.
type UserRepository interface {
	CreateUser(ctx context.Context, email, passwordHash, name string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// CredentialStore is the narrow accessor permitted to return the password
// hash. It exists as a separate interface so that only the local credential
// strategy can be handed the hash-including lookup; no other code path can
// reach it.
type CredentialStore interface {
	FindUserByEmailWithPassword(ctx context.Context, email string) (models.User, error)
}

// FavoriteRepository is the data-access surface over the favorites join
// table. Favorites are immutable: there is no update operation.
type FavoriteRepository interface {
	GetFavorites(ctx context.Context, userID int64) ([]string, error)
	AddFavorite(ctx context.Context, userID int64, movieID string) (models.Favorite, error)
	RemoveFavorite(ctx context.Context, userID int64, movieID string) error
}
