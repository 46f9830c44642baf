package http

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-movie-keeper/internal/adapter/omdb"
	"github.com/MKhiriev/go-movie-keeper/internal/logger"
	"github.com/MKhiriev/go-movie-keeper/internal/utils"
)

var imdbIDPathPattern = regexp.MustCompile(`^tt\d+$`)

func (h *Handler) searchMovies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	params := r.URL.Query()

	term := strings.TrimSpace(params.Get("s"))
	if term == "" {
		_, _ = utils.WriteJSONError(w, "search term is required", http.StatusBadRequest)
		return
	}

	page := 1
	if rawPage := params.Get("page"); rawPage != "" {
		parsed, err := strconv.Atoi(rawPage)
		if err != nil || parsed < 1 {
			log.Debug().Str("page", rawPage).Msg("rejected invalid page parameter")
			_, _ = utils.WriteJSONError(w, "page must be a positive integer", http.StatusBadRequest)
			return
		}
		page = parsed
	}

	result, err := h.services.MovieService.Search(ctx, omdb.SearchQuery{
		Term: term,
		Type: params.Get("type"),
		Year: params.Get("y"),
		Page: page,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) getMovie(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	imdbID := chi.URLParam(r, "imdbID")
	if !imdbIDPathPattern.MatchString(imdbID) {
		_, _ = utils.WriteJSONError(w, "movie id must have the form tt<digits>", http.StatusBadRequest)
		return
	}

	movie, err := h.services.MovieService.GetByID(ctx, imdbID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, movie, http.StatusOK)
}
