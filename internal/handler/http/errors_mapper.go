package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-movie-keeper/internal/adapter/omdb"
	"github.com/MKhiriev/go-movie-keeper/internal/logger"
	"github.com/MKhiriev/go-movie-keeper/internal/service"
	"github.com/MKhiriev/go-movie-keeper/internal/store"
	"github.com/MKhiriev/go-movie-keeper/internal/utils"
)

// errorStatusMap is the single place where domain errors are translated
// into HTTP statuses. Handlers pass any error to respondError; everything
// not listed here is an internal failure and reports 500 with a generic
// body.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrPasswordAuthUnavailable: http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrEmailAlreadyExists:    http.StatusConflict,
	store.ErrUserNotFound:          http.StatusNotFound,
	store.ErrFavoriteAlreadyExists: http.StatusConflict,
	store.ErrFavoriteNotFound:      http.StatusNotFound,

	omdb.ErrMovieNotFound:  http.StatusNotFound,
	omdb.ErrTooManyResults: http.StatusBadRequest,
	omdb.ErrGatewayFailure: http.StatusBadGateway,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

// respondError writes the JSON error body for err. The body carries the
// sentinel's own message, never the wrapped low-level detail, so storage
// and upstream error text cannot leak to clients.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			if status >= http.StatusInternalServerError {
				log.Err(err).Msg("request failed")
				_, _ = utils.WriteJSONError(w, http.StatusText(status), status)
				return
			}
			log.Debug().Err(err).Msg("request rejected")
			_, _ = utils.WriteJSONError(w, target.Error(), status)
			return
		}
	}

	log.Err(err).Msg("unexpected error")
	_, _ = utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
