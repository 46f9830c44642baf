// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package omdb provides the client for the external OMDB movie metadata API.
//
// The primary abstraction is [MovieGateway], which decouples the service
// layer from the wire protocol. The package ships one HTTP implementation
// ([NewClient]) built on resty.
//
// Error values defined in errors.go are mapped from OMDB's in-band error
// payloads so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrMovieNotFound] for an unknown title).
package omdb

import (
	"context"

	"github.com/MKhiriev/go-movie-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../../mock/movie_gateway_mock.go -package=mock

// SearchQuery carries the parameters of one search lookup. Term is
// mandatory; Type, Year and Page are passed through to the API only when
// set.
type SearchQuery struct {
	Term string
	Type string
	Year string
	Page int
}

// MovieGateway defines lookups against the external movie metadata API.
// Implementations are responsible for serialisation, API-key management, and
// mapping the API's in-band error payloads to the sentinel values defined in
// this package.
type MovieGateway interface {
	// Search runs a title search and returns one page of summaries together
	// with the total match count reported by the API. Returns
	// ErrMovieNotFound when nothing matches and ErrTooManyResults when the
	// term is too broad for the API to enumerate.
	Search(ctx context.Context, query SearchQuery) (models.MovieSearchResult, error)

	// GetByID fetches the full detail record for one IMDb identifier
	// (e.g. "tt0133093"). Returns ErrMovieNotFound for an unknown id.
	GetByID(ctx context.Context, imdbID string) (models.Movie, error)
}
