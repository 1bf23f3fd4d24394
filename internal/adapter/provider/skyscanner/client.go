// Package skyscanner is the adapter for the RapidAPI-hosted travel-data
// provider. It implements location resolution (auto-complete) and round-trip
// search against the provider's HTTP API, normalizing the weakly-typed
// responses into domain entities.
package skyscanner

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/skytrip/flight-search-api/internal/domain"
	"github.com/skytrip/flight-search-api/internal/infrastructure/metrics"
	"github.com/skytrip/flight-search-api/internal/infrastructure/ratelimit"
)

// Provider endpoint paths.
const (
	autoCompletePath   = "/flights/auto-complete"
	searchRoundTripPath = "/flights/search-roundtrip"
)

// Rate-limiter keys, one bucket per endpoint.
const (
	limitKeyAutoComplete = "auto-complete"
	limitKeySearch       = "search-roundtrip"
)

// DefaultTimeout bounds a single upstream HTTP call.
const DefaultTimeout = 10 * time.Second

// Config holds the provider connection settings.
type Config struct {
	// Host is the RapidAPI host name, sent as the x-rapidapi-host header.
	Host string

	// APIKey is the RapidAPI key, sent as the x-rapidapi-key header.
	APIKey string

	// BaseURL overrides the request base URL. Defaults to https://<Host>.
	// Tests point this at a local server.
	BaseURL string

	// Timeout bounds a single HTTP call. Defaults to DefaultTimeout.
	Timeout time.Duration
}

// Client talks to the upstream provider. It is safe for concurrent use.
type Client struct {
	cfg        Config
	baseURL    string
	httpClient *http.Client
	limiter    *ratelimit.KeyedLimiter
}

// NewClient creates a provider client. A nil limiter disables client-side
// rate limiting.
func NewClient(cfg Config, limiter *ratelimit.KeyedLimiter) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://" + cfg.Host
	}

	return &Client{
		cfg:        cfg,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    limiter,
	}
}

// ResolveLocation implements domain.LocationResolver.
// The first candidate wins unconditionally; an empty candidate list is a
// NotFound, and any transport or payload failure is an upstream error.
func (c *Client) ResolveLocation(ctx context.Context, query string) (string, error) {
	params := url.Values{}
	params.Set("query", query)

	var resp autoCompleteResponse
	if err := c.get(ctx, limitKeyAutoComplete, autoCompletePath, params, &resp); err != nil {
		return "", domain.NewUpstreamError(limitKeyAutoComplete, err)
	}

	if len(resp.Data) == 0 || resp.Data[0].Presentation.ID == "" {
		return "", fmt.Errorf("%w: no candidate for %q", domain.ErrLocationNotFound, query)
	}
	return resp.Data[0].Presentation.ID, nil
}

// SearchRoundTrip implements domain.RoundTripProvider.
func (c *Client) SearchRoundTrip(ctx context.Context, originID, destinationID string, pair domain.DatePair, req domain.SearchRequest) ([]domain.FlightOption, error) {
	params := url.Values{}
	params.Set("fromEntityId", originID)
	params.Set("toEntityId", destinationID)
	params.Set("departDate", pair.Depart)
	params.Set("returnDate", pair.Return)
	params.Set("market", req.Market)
	params.Set("currency", req.Currency)
	params.Set("adults", strconv.Itoa(req.Adults))
	params.Set("children", strconv.Itoa(req.Children))
	params.Set("infants", strconv.Itoa(req.Infants))
	params.Set("cabinClass", string(req.CabinClass))
	params.Set("sort", "cheapest_first")

	var resp searchResponse
	if err := c.get(ctx, limitKeySearch, searchRoundTripPath, params, &resp); err != nil {
		return nil, domain.NewUpstreamError(limitKeySearch, err)
	}

	return normalize(&resp, req.Currency), nil
}

// get performs one rate-limited GET against the provider and decodes the
// JSON response into out.
func (c *Client) get(ctx context.Context, limitKey, path string, params url.Values, out interface{}) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx, limitKey); err != nil {
			return fmt.Errorf("rate limit wait: %w", err)
		}
	}

	reqURL := c.baseURL + path + "?" + params.Encode()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("x-rapidapi-host", c.cfg.Host)
	httpReq.Header.Set("x-rapidapi-key", c.cfg.APIKey)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(limitKey, metrics.OutcomeError).Inc()
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		metrics.UpstreamRequestsTotal.WithLabelValues(limitKey, metrics.OutcomeError).Inc()
		// Drain a little of the body for the log line without trusting it.
		body, _ := io.ReadAll(io.LimitReader(httpResp.Body, 512))
		return fmt.Errorf("request %s: status %d: %s", path, httpResp.StatusCode, body)
	}

	if err := json.NewDecoder(httpResp.Body).Decode(out); err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(limitKey, metrics.OutcomeError).Inc()
		return fmt.Errorf("decode %s response: %w", path, err)
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(limitKey, metrics.OutcomeSuccess).Inc()
	return nil
}

// Ensure Client implements the domain contracts at compile time.
var (
	_ domain.LocationResolver  = (*Client)(nil)
	_ domain.RoundTripProvider = (*Client)(nil)
)
