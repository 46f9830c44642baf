package models

// AuthResponse is the body returned by the register and login endpoints:
// the authenticated principal plus a freshly signed bearer token.
type AuthResponse struct {
	User  Principal `json:"user"`
	Token string    `json:"token"`
}

// FavoritesResponse is the body returned by the list-favorites endpoint.
// Favorites is always a non-nil slice: a user with no favorites gets an
// empty list, not null.
type FavoritesResponse struct {
	Favorites []string `json:"favorites"`
}

// FavoriteResponse echoes the movie identifier affected by an add or
// remove operation.
type FavoriteResponse struct {
	MovieID string `json:"movie_id"`
}

// ErrorResponse is the uniform error body. Message carries the
// domain-level description; raw storage or external API error text is
// never placed here.
type ErrorResponse struct {
	Error string `json:"error"`
}
