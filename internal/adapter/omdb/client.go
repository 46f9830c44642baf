package omdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-movie-keeper/internal/config"
	"github.com/MKhiriev/go-movie-keeper/internal/logger"
	"github.com/MKhiriev/go-movie-keeper/internal/utils"
	"github.com/MKhiriev/go-movie-keeper/models"
)

type client struct {
	httpClient *utils.HTTPClient
	apiKey     string
	logger     *logger.Logger
}

// NewClient constructs the HTTP implementation of [MovieGateway]. It
// normalises and validates the base URL from cfg.BaseURL and configures the
// underlying HTTP client with the resolved base URL and request timeout.
//
// Returns an error if cfg.APIKey is empty or cfg.BaseURL cannot be parsed as
// a valid URL: the gateway is a core surface, so a half-configured client
// must fail startup rather than every request.
func NewClient(cfg config.OMDB, logger *logger.Logger) (MovieGateway, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("empty OMDB API key")
	}

	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid OMDB base url: %w", err)
	}

	httpClient := utils.NewHTTPClient()
	httpClient.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &client{
		httpClient: httpClient,
		apiKey:     cfg.APIKey,
		logger:     logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Search implements [MovieGateway]. Optional query fields are attached only
// when set, matching the API's treatment of absent parameters.
func (c *client) Search(ctx context.Context, query SearchQuery) (models.MovieSearchResult, error) {
	params := url.Values{}
	params.Set("s", query.Term)
	if query.Type != "" {
		params.Set("type", query.Type)
	}
	if query.Year != "" {
		params.Set("y", query.Year)
	}
	page := query.Page
	if page < 1 {
		page = 1
	}
	params.Set("page", strconv.Itoa(page))

	var payload searchResponse
	if err := c.get(ctx, params, &payload); err != nil {
		return models.MovieSearchResult{}, err
	}
	if err := mapInBandError(payload.Response, payload.Error); err != nil {
		return models.MovieSearchResult{}, err
	}

	return payload.toResult(page), nil
}

// GetByID implements [MovieGateway].
func (c *client) GetByID(ctx context.Context, imdbID string) (models.Movie, error) {
	params := url.Values{}
	params.Set("i", imdbID)
	params.Set("plot", "full")

	var payload detailResponse
	if err := c.get(ctx, params, &payload); err != nil {
		return models.Movie{}, err
	}
	if err := mapInBandError(payload.Response, payload.Error); err != nil {
		return models.Movie{}, err
	}

	return payload.toMovie(), nil
}

// get performs one GET against the API root with the given parameters plus
// the API key, and decodes the body into out. The API key is attached here
// so it can never leak through a caller-built URL in logs.
func (c *client) get(ctx context.Context, params url.Values, out any) error {
	params.Set("apikey", c.apiKey)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParamsFromValues(params).
		Get("/")
	if err != nil {
		c.logger.Err(err).Str("func", "*client.get").Msg("error: metadata request failed")
		return fmt.Errorf("%w: %v", ErrGatewayFailure, err)
	}
	if err := mapHTTPError(resp); err != nil {
		c.logger.Err(err).Str("func", "*client.get").Int("status", resp.StatusCode()).Msg("error: metadata API status")
		return err
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		c.logger.Err(err).Str("func", "*client.get").Msg("error: decoding metadata payload")
		return fmt.Errorf("%w: decoding payload: %v", ErrGatewayFailure, err)
	}

	return nil
}

// mapHTTPError translates a non-2xx status into ErrGatewayFailure. OMDB
// reports domain errors in-band on a 200, so every non-2xx here is an
// infrastructure or authentication failure.
func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	return fmt.Errorf("%w: http %d: %s", ErrGatewayFailure, resp.StatusCode(), body)
}

// mapInBandError translates OMDB's Response/Error pair into sentinel
// errors. The reason strings are stable API behaviour, not localised text.
func mapInBandError(response, reason string) error {
	if !strings.EqualFold(response, "False") {
		return nil
	}

	switch {
	case strings.EqualFold(reason, "Movie not found!"),
		strings.EqualFold(reason, "Incorrect IMDb ID."),
		strings.EqualFold(reason, "Series not found!"),
		strings.EqualFold(reason, "Episode not found!"):
		return ErrMovieNotFound
	case strings.EqualFold(reason, "Too many results."):
		return ErrTooManyResults
	default:
		return fmt.Errorf("%w: %s", ErrGatewayFailure, reason)
	}
}
