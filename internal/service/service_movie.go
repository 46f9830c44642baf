package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-movie-keeper/internal/adapter/omdb"
	"github.com/MKhiriev/go-movie-keeper/internal/cache"
	"github.com/MKhiriev/go-movie-keeper/internal/config"
	"github.com/MKhiriev/go-movie-keeper/internal/logger"
	"github.com/MKhiriev/go-movie-keeper/models"
)

// movieService fronts the metadata gateway with a cache-aside layer.
// Lookups try the cache first, fall through to the gateway on a miss, and
// write the fresh result back with a TTL per lookup class. The service is
// fully correct with the Nop cache: every miss is simply an upstream call.
//
// Errors are never cached. A negative result stays as expensive as it is.
type movieService struct {
	gateway omdb.MovieGateway
	cache   cache.Cache

	searchTTL time.Duration
	detailTTL time.Duration

	logger *logger.Logger
}

func NewMovieService(gateway omdb.MovieGateway, cache cache.Cache, cfg config.Cache, logger *logger.Logger) MovieService {
	return &movieService{
		gateway:   gateway,
		cache:     cache,
		searchTTL: cfg.SearchTTL,
		detailTTL: cfg.DetailTTL,
		logger:    logger,
	}
}

// Search implements [MovieService].
func (m *movieService) Search(ctx context.Context, query omdb.SearchQuery) (models.MovieSearchResult, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(query.Term) == "" {
		return models.MovieSearchResult{}, ErrInvalidDataProvided
	}

	key := searchCacheKey(query)
	if cached, ok := m.cache.Get(ctx, key); ok {
		var result models.MovieSearchResult
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			log.Debug().Str("key", key).Msg("search served from cache")
			return result, nil
		}
		log.Warn().Str("key", key).Msg("corrupt cache entry, falling through to gateway")
	}

	result, err := m.gateway.Search(ctx, query)
	if err != nil {
		return models.MovieSearchResult{}, fmt.Errorf("search lookup failed: %w", err)
	}

	m.cacheStore(ctx, key, result, m.searchTTL)
	return result, nil
}

// GetByID implements [MovieService].
func (m *movieService) GetByID(ctx context.Context, imdbID string) (models.Movie, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(imdbID) == "" {
		return models.Movie{}, ErrInvalidDataProvided
	}

	key := detailCacheKey(imdbID)
	if cached, ok := m.cache.Get(ctx, key); ok {
		var movie models.Movie
		if err := json.Unmarshal([]byte(cached), &movie); err == nil {
			log.Debug().Str("key", key).Msg("detail served from cache")
			return movie, nil
		}
		log.Warn().Str("key", key).Msg("corrupt cache entry, falling through to gateway")
	}

	movie, err := m.gateway.GetByID(ctx, imdbID)
	if err != nil {
		return models.Movie{}, fmt.Errorf("detail lookup failed: %w", err)
	}

	m.cacheStore(ctx, key, movie, m.detailTTL)
	return movie, nil
}

// cacheStore writes a fresh result back to the cache. Marshalling failures
// are logged and swallowed: the caller already holds the result.
func (m *movieService) cacheStore(ctx context.Context, key string, value any, ttl time.Duration) {
	payload, err := json.Marshal(value)
	if err != nil {
		m.logger.Warn().Err(err).Str("key", key).Msg("cache write skipped")
		return
	}
	m.cache.Set(ctx, key, string(payload), ttl)
}

// searchCacheKey builds a deterministic key from the normalised query: two
// requests for the same logical search always share a cache entry.
func searchCacheKey(query omdb.SearchQuery) string {
	page := query.Page
	if page < 1 {
		page = 1
	}
	term := strings.ToLower(strings.TrimSpace(query.Term))
	return fmt.Sprintf("omdb:search:%s|%s|%s|%d", term, query.Type, query.Year, page)
}

func detailCacheKey(imdbID string) string {
	return "omdb:movie:" + imdbID
}
