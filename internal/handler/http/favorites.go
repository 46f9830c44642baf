package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-movie-keeper/internal/logger"
	"github.com/MKhiriev/go-movie-keeper/internal/utils"
	"github.com/MKhiriev/go-movie-keeper/models"
)

// addFavoriteRequest is the body of POST /api/favorites/.
type addFavoriteRequest struct {
	MovieID string `json:"movie_id"`
}

func (h *Handler) listFavorites(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		_, _ = utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	favorites, err := h.services.FavoriteService.GetFavorites(ctx, principal.UserID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.FavoritesResponse{Favorites: favorites}, http.StatusOK)
}

func (h *Handler) addFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		_, _ = utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req addFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		_, _ = utils.WriteJSONError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	favorite, err := h.services.FavoriteService.AddFavorite(ctx, principal.UserID, req.MovieID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	log.Debug().Int64("id", principal.UserID).Str("movieID", favorite.MovieID).Msg("favorite added")
	_, _ = utils.WriteJSON(w, models.FavoriteResponse{MovieID: favorite.MovieID}, http.StatusCreated)
}

func (h *Handler) removeFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		_, _ = utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	movieID := chi.URLParam(r, "movieID")
	if err := h.services.FavoriteService.RemoveFavorite(ctx, principal.UserID, movieID); err != nil {
		respondError(w, r, err)
		return
	}

	log.Debug().Int64("id", principal.UserID).Str("movieID", movieID).Msg("favorite removed")
	_, _ = utils.WriteJSON(w, models.FavoriteResponse{MovieID: movieID}, http.StatusOK)
}
