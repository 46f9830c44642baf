package models

// Movie is the detail view of a single title as returned by the metadata
// gateway. Field names follow the external API payload; values are passed
// through verbatim, the server adds nothing of its own.
type Movie struct {
	Title      string        `json:"title"`
	Year       string        `json:"year"`
	Rated      string        `json:"rated,omitempty"`
	Released   string        `json:"released,omitempty"`
	Runtime    string        `json:"runtime,omitempty"`
	Genre      string        `json:"genre,omitempty"`
	Director   string        `json:"director,omitempty"`
	Actors     string        `json:"actors,omitempty"`
	Plot       string        `json:"plot,omitempty"`
	Poster     string        `json:"poster,omitempty"`
	IMDBRating string        `json:"imdb_rating,omitempty"`
	IMDBID     string        `json:"imdb_id"`
	Type       string        `json:"type"`
	Ratings    []MovieRating `json:"ratings,omitempty"`
}

// MovieRating is a single source/value rating pair attached to a detail
// lookup (e.g. "Rotten Tomatoes" / "94%").
type MovieRating struct {
	Source string `json:"source"`
	Value  string `json:"value"`
}

// MovieSummary is one row of a search result: the subset of fields the
// external API returns for list queries.
type MovieSummary struct {
	Title  string `json:"title"`
	Year   string `json:"year"`
	IMDBID string `json:"imdb_id"`
	Type   string `json:"type"`
	Poster string `json:"poster,omitempty"`
}

// MovieSearchResult is the page of summaries produced by a search lookup,
// together with the total number of matches reported by the external API.
type MovieSearchResult struct {
	Movies       []MovieSummary `json:"movies"`
	TotalResults int            `json:"total_results"`
	Page         int            `json:"page"`
}
