package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrTokenSignKeyMissing indicates that no JWT sign key was provided
	// by any configuration source. The server refuses to start without one.
	ErrTokenSignKeyMissing = errors.New("token sign key is not configured")

	// ErrTokenSignKeyInsecure indicates that the JWT sign key was left at
	// the documented placeholder value from the example configuration.
	ErrTokenSignKeyInsecure = errors.New("token sign key is left at the insecure default")

	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrOMDBAPIKeyMissing indicates that no API key for the external
	// metadata service was provided.
	ErrOMDBAPIKeyMissing = errors.New("OMDB API key is not configured")
)
