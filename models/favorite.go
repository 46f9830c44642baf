package models

import "time"

// Favorite links a user to an external movie identifier. Favorites are
// immutable once created: they are only ever added or removed, never
// updated. The (UserID, MovieID) pair is unique at the database level.
type Favorite struct {
	// FavoriteID is the internal unique identifier of the row.
	FavoriteID int64 `json:"-"`

	// UserID is the owning user. Deleting the user cascades to the
	// user's favorites.
	UserID int64 `json:"-"`

	// MovieID is the external movie identifier. In this domain it has
	// the form "tt" followed by digits, but the repository treats it
	// as an opaque string.
	MovieID string `json:"movie_id"`

	// CreatedAt is the timestamp when the favorite was added.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Favorite model.
func (f Favorite) TableName() string {
	return "favorites"
}
