// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Signing must fail loudly: a missing or insecure-default token sign key is
// a startup-time error, never a request-time one.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrTokenSignKeyMissing
	}
	if cfg.App.TokenSignKey == InsecureDefaultTokenSignKey {
		return ErrTokenSignKeyInsecure
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.OMDB.APIKey == "" {
		return ErrOMDBAPIKeyMissing
	}

	return nil
}
