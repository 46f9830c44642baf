package omdb

import (
	"strconv"

	"github.com/MKhiriev/go-movie-keeper/models"
)

// Wire structs mirror the OMDB payloads field for field. OMDB reports
// failures in-band: a 200 response with Response == "False" and the reason
// in Error.

type searchResponse struct {
	Search       []searchItem `json:"Search"`
	TotalResults string       `json:"totalResults"`
	Response     string       `json:"Response"`
	Error        string       `json:"Error"`
}

type searchItem struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	IMDBID string `json:"imdbID"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}

type detailResponse struct {
	Title      string       `json:"Title"`
	Year       string       `json:"Year"`
	Rated      string       `json:"Rated"`
	Released   string       `json:"Released"`
	Runtime    string       `json:"Runtime"`
	Genre      string       `json:"Genre"`
	Director   string       `json:"Director"`
	Actors     string       `json:"Actors"`
	Plot       string       `json:"Plot"`
	Poster     string       `json:"Poster"`
	Ratings    []ratingItem `json:"Ratings"`
	IMDBRating string       `json:"imdbRating"`
	IMDBID     string       `json:"imdbID"`
	Type       string       `json:"Type"`
	Response   string       `json:"Response"`
	Error      string       `json:"Error"`
}

type ratingItem struct {
	Source string `json:"Source"`
	Value  string `json:"Value"`
}

func (r searchResponse) toResult(page int) models.MovieSearchResult {
	movies := make([]models.MovieSummary, 0, len(r.Search))
	for _, item := range r.Search {
		movies = append(movies, models.MovieSummary{
			Title:  item.Title,
			Year:   item.Year,
			IMDBID: item.IMDBID,
			Type:   item.Type,
			Poster: posterOrEmpty(item.Poster),
		})
	}

	// totalResults arrives as a string; a garbled value degrades to the
	// page size rather than failing the whole lookup.
	total, err := strconv.Atoi(r.TotalResults)
	if err != nil {
		total = len(movies)
	}

	return models.MovieSearchResult{
		Movies:       movies,
		TotalResults: total,
		Page:         page,
	}
}

func (r detailResponse) toMovie() models.Movie {
	ratings := make([]models.MovieRating, 0, len(r.Ratings))
	for _, rating := range r.Ratings {
		ratings = append(ratings, models.MovieRating{
			Source: rating.Source,
			Value:  rating.Value,
		})
	}

	return models.Movie{
		Title:      r.Title,
		Year:       r.Year,
		Rated:      r.Rated,
		Released:   r.Released,
		Runtime:    r.Runtime,
		Genre:      r.Genre,
		Director:   r.Director,
		Actors:     r.Actors,
		Plot:       r.Plot,
		Poster:     posterOrEmpty(r.Poster),
		IMDBRating: r.IMDBRating,
		IMDBID:     r.IMDBID,
		Type:       r.Type,
		Ratings:    ratings,
	}
}

// posterOrEmpty normalises OMDB's "N/A" placeholder to an empty string so
// clients do not render a literal "N/A" as an image URL.
func posterOrEmpty(poster string) string {
	if poster == "N/A" {
		return ""
	}
	return poster
}
