package store

import "github.com/MKhiriev/go-movie-keeper/internal/logger"

// Repositories bundles all data-access surfaces backed by the shared
// SQLite handle. The credential store is the same repository instance as
// UserRepository, exposed through its narrow interface.
type Repositories struct {
	UserRepository     UserRepository
	CredentialStore    CredentialStore
	FavoriteRepository FavoriteRepository
}

func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	users := NewUserRepository(db, logger)
	return &Repositories{
		UserRepository:     users,
		CredentialStore:    users,
		FavoriteRepository: NewFavoriteRepository(db, logger),
	}
}
