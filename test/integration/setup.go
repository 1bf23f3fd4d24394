// Package integration provides helpers and integration tests for the flight
// search system. Integration tests verify that components work together
// correctly, including HTTP handlers, use cases, and mock providers.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/skytrip/flight-search-api/internal/adapter/http"
	"github.com/skytrip/flight-search-api/internal/adapter/http/middleware"
	"github.com/skytrip/flight-search-api/internal/domain"
	"github.com/skytrip/flight-search-api/internal/infrastructure/timeutil"
	"github.com/skytrip/flight-search-api/internal/market"
	"github.com/skytrip/flight-search-api/internal/usecase"
	"github.com/skytrip/flight-search-api/test/mock"
)

// Today is the calendar date every integration test's clock is pinned to.
// The fixed window dates below sit a few days after it: 2024-12-14 is a
// Saturday and 2024-12-15 a Sunday, so weekend classification is known.
const Today = "2024-12-10"

// Fixed window dates used across the integration tests.
const (
	DepartDate = "2024-12-14"
	ReturnDate = "2024-12-16"
)

// TestServer wraps an Echo instance and provides helper methods for
// integration testing.
type TestServer struct {
	Echo *echo.Echo
}

// ServerOption customizes the test server.
type ServerOption func(*serverConfig)

type serverConfig struct {
	apiKey string
	table  *market.Table
	geo    domain.GeoIPResolver
}

// WithAPIKey enables the API key guard on the search endpoint.
func WithAPIKey(key string) ServerOption {
	return func(c *serverConfig) { c.apiKey = key }
}

// WithMarketTable installs a country market table.
func WithMarketTable(table *market.Table) ServerOption {
	return func(c *serverConfig) { c.table = table }
}

// WithGeoIP installs a geolocation resolver.
func WithGeoIP(geo domain.GeoIPResolver) ServerOption {
	return func(c *serverConfig) { c.geo = geo }
}

// NewTestServer creates a test server wired to the given provider mock with
// the clock pinned to Today.
func NewTestServer(provider *mock.Provider, opts ...ServerOption) *TestServer {
	cfg := serverConfig{
		table: market.NewTable(nil),
		geo:   mock.NewGeoIP(""),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	searchUseCase := usecase.NewFlightSearchUseCase(provider, provider, nil)
	locationUseCase := usecase.NewLocationUseCase(cfg.geo, cfg.table)

	flightHandler := httpAdapter.NewFlightHandler(searchUseCase, timeutil.NewFixedClockAt(Today))
	locationHandler := httpAdapter.NewLocationHandler(locationUseCase)

	var guard echo.MiddlewareFunc
	if cfg.apiKey != "" {
		guard = middleware.APIKeyGuard(cfg.apiKey)
	}
	httpAdapter.RegisterRoutes(e, flightHandler, locationHandler, guard)

	return &TestServer{Echo: e}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method  string
	Path    string
	Body    interface{}
	Headers map[string]string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)
	if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SearchRequest posts a search request body.
func (ts *TestServer) SearchRequest(body interface{}, headers map[string]string) Response {
	return ts.Do(Request{
		Method:  http.MethodPost,
		Path:    "/api/v1/flights/search",
		Body:    body,
		Headers: headers,
	})
}

// ParseSearchResponse parses the response body as a SearchResponseDTO.
func (r *Response) ParseSearchResponse() (*httpAdapter.SearchResponseDTO, error) {
	var resp httpAdapter.SearchResponseDTO
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// DefaultSearchRequest returns a valid search request body against the
// pinned clock.
func DefaultSearchRequest() map[string]interface{} {
	return map[string]interface{}{
		"origin":      "Kuala Lumpur",
		"destination": "London",
		"departDate":  DepartDate,
		"returnDate":  ReturnDate,
	}
}

// DefaultProvider returns a provider mock that resolves the default request's
// places and returns options for every pair in its window.
func DefaultProvider() *mock.Provider {
	p := mock.NewProvider().
		WithLocation("Kuala Lumpur", "27536561").
		WithLocation("London", "27544008")

	// The 2024-12-14..16 window yields C(3,2) = 3 pairs.
	pairs := []domain.DatePair{
		{Depart: "2024-12-14", Return: "2024-12-15"},
		{Depart: "2024-12-14", Return: "2024-12-16"},
		{Depart: "2024-12-15", Return: "2024-12-16"},
	}
	for i, pair := range pairs {
		p.WithOptions(pair, mock.SampleOptions(pair, 2, float64(100*(i+1))))
	}
	return p
}
