package omdb

import "errors"

var (
	// ErrMovieNotFound is returned when the API reports that no title
	// matches the search term or identifier.
	ErrMovieNotFound = errors.New("movie not found")

	// ErrTooManyResults is returned when the search term is too broad for
	// the API to enumerate matches.
	ErrTooManyResults = errors.New("too many results")

	// ErrGatewayFailure covers every other upstream failure: transport
	// errors, non-2xx statuses, malformed payloads and unclassified in-band
	// errors (including a rejected API key).
	ErrGatewayFailure = errors.New("movie metadata gateway failure")
)
