// Package quoteapi provides a Go client for IEX-Cloud-style stock quote APIs.
//
// This package can be imported by external projects to fetch real-time
// quotes programmatically.
package quoteapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the IEX Cloud stable API.
const DefaultBaseURL = "https://cloud.iexapis.com/stable"

// Client handles HTTP requests to the quote API. The API token travels in
// the token query parameter of every request.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     zerolog.Logger

	token string
}

// NewClient creates a new API client with the given base URL and token.
func NewClient(baseURL, token string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		Logger: zerolog.Nop(),
		token:  token,
	}
}

// Get performs a GET request to the specified path.
func (c *Client) Get(ctx context.Context, path string) (*http.Response, error) {
	return c.GetWithParams(ctx, path, nil)
}

// GetWithParams performs a GET request to the specified path with query parameters.
func (c *Client) GetWithParams(ctx context.Context, path string, params map[string]string) (*http.Response, error) {
	query := url.Values{}
	for k, v := range params {
		query.Set(k, v)
	}
	if c.token != "" {
		query.Set("token", c.token)
	}
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	c.Logger.Debug().
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("quote api request")

	return resp, nil
}
