package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a thin wrapper around resty.Client. It embeds *resty.Client
// to expose all of its methods directly, while leaving room for
// application-specific extension.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a new HTTPClient with a default-configured
// underlying resty.Client. Each call returns an independent instance with
// its own configuration, connection pool, and state; callers tune base URL
// and timeouts on the embedded client.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
