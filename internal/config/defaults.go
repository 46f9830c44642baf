package config

import "time"

// defaultConfig returns the built-in fallback values for every setting that
// has a sensible default. Secrets deliberately have none: the token sign key
// and the OMDB API key must come from the environment, flags, or a file.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "movie-keeper",
			TokenDuration: 72 * time.Hour,
		},
		Storage: Storage{
			DB: DB{
				DSN: "movie-keeper.db",
			},
		},
		Cache: Cache{
			SearchTTL: 10 * time.Minute,
			DetailTTL: 24 * time.Hour,
		},
		OMDB: OMDB{
			BaseURL:        "https://www.omdbapi.com",
			RequestTimeout: 10 * time.Second,
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
	}
}
