// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// InsecureDefaultTokenSignKey is the documented placeholder sign key shipped
// in example configuration. Startup refuses to proceed while the configured
// key equals this value.
const InsecureDefaultTokenSignKey = "change-me"

// StructuredConfig is the top-level configuration container for the
// go-movie-keeper application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as token signing
	// parameters and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Cache holds connection and TTL settings for the Redis cache that
	// fronts the external metadata API. The cache is optional: with an
	// empty address the application runs uncached.
	Cache Cache `envPrefix:"CACHE_"`

	// OMDB holds credentials and endpoint settings for the external
	// movie metadata API.
	OMDB OMDB `envPrefix:"OMDB_"`

	// Server holds network address and timeout settings for the HTTP
	// server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control security,
// token lifecycle, and versioning.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Must be kept confidential. Startup fails when it is unset or left
	// at [InsecureDefaultTokenSignKey].
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// It identifies the service that issued the token and is validated on
	// every authenticated request.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "1h", "168h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3").
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the path to the SQLite database file
	// (e.g. "/var/lib/movie-keeper/movies.db"). The special value
	// ":memory:" opens an in-memory database and is intended for tests.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Cache holds Redis connection settings and per-lookup-class TTLs for the
// cache-aside layer in front of the metadata API.
type Cache struct {
	// RedisAddress is the Redis server address in "host:port" format.
	// Empty disables the cache entirely.
	// Env: CACHE_REDIS_ADDRESS
	RedisAddress string `env:"REDIS_ADDRESS"`

	// RedisPassword is the optional Redis AUTH password.
	// Env: CACHE_REDIS_PASSWORD
	RedisPassword string `env:"REDIS_PASSWORD"`

	// RedisDB is the Redis logical database number.
	// Env: CACHE_REDIS_DB
	RedisDB int `env:"REDIS_DB"`

	// SearchTTL is how long cached search results stay valid. Search
	// results are volatile, so the default is short (10 minutes).
	// Env: CACHE_SEARCH_TTL
	SearchTTL time.Duration `env:"SEARCH_TTL"`

	// DetailTTL is how long cached detail lookups stay valid. Details
	// are near-static, so the default is long (24 hours).
	// Env: CACHE_DETAIL_TTL
	DetailTTL time.Duration `env:"DETAIL_TTL"`
}

// OMDB holds settings for the external movie metadata API.
type OMDB struct {
	// APIKey is the OMDB API key appended to every request.
	// Env: OMDB_API_KEY
	APIKey string `env:"API_KEY"`

	// BaseURL is the OMDB API endpoint. Overridable for tests.
	// Env: OMDB_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds a single outbound metadata request.
	// Env: OMDB_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults for fields still unset
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
