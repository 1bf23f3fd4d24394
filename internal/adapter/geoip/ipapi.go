// Package geoip resolves client IP addresses to ISO country codes using the
// ipapi.co HTTP service.
package geoip

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/skytrip/flight-search-api/internal/domain"
)

// DefaultBaseURL is the public ipapi.co endpoint.
const DefaultBaseURL = "https://ipapi.co"

// DefaultTimeout bounds a single lookup call.
const DefaultTimeout = 5 * time.Second

// Config holds the geolocation service settings.
type Config struct {
	// BaseURL overrides the service base URL. Defaults to DefaultBaseURL.
	BaseURL string

	// Timeout bounds a single HTTP call. Defaults to DefaultTimeout.
	Timeout time.Duration
}

// Client looks up country codes on ipapi.co. It is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a geolocation client.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// lookupResponse is the subset of the ipapi.co payload we read.
type lookupResponse struct {
	CountryCode string `json:"country_code"`
}

// CountryCode implements domain.GeoIPResolver. Loopback and empty addresses
// fall back to the caller-side lookup endpoint, which geolocates the server's
// own egress address.
func (c *Client) CountryCode(ctx context.Context, ip string) (string, error) {
	path := "/json/"
	if !isLocalAddress(ip) {
		path = "/" + ip + "/json/"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return "", fmt.Errorf("build geolocation request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", domain.NewUpstreamError("geolocation", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", domain.NewUpstreamError("geolocation",
			fmt.Errorf("status %d: %s", resp.StatusCode, body))
	}

	var payload lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", domain.NewUpstreamError("geolocation", fmt.Errorf("decode response: %w", err))
	}

	return strings.ToUpper(payload.CountryCode), nil
}

// isLocalAddress reports whether the address cannot be geolocated remotely.
func isLocalAddress(ip string) bool {
	switch ip {
	case "", "127.0.0.1", "::1", "localhost":
		return true
	}
	return false
}

var _ domain.GeoIPResolver = (*Client)(nil)
