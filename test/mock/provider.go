// Package mock provides test doubles for the flight search system.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific responses).
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/skytrip/flight-search-api/internal/domain"
)

// Provider is a configurable mock implementation of domain.LocationResolver
// and domain.RoundTripProvider. It supports configurable delays, errors, and
// per-query responses for testing fan-out, timeout, and failure scenarios.
type Provider struct {
	locations  map[string]string
	options    map[string][]domain.FlightOption
	resolveErr error
	searchErr  error
	delay      time.Duration

	resolveCalls int
	searchCalls  int
	searchPairs  []domain.DatePair
	mu           sync.Mutex
}

// NewProvider creates a new mock provider. The provider is configured using
// the builder pattern methods.
func NewProvider() *Provider {
	return &Provider{
		locations: make(map[string]string),
		options:   make(map[string][]domain.FlightOption),
	}
}

// WithLocation configures the entity ID returned for a free-text query.
func (p *Provider) WithLocation(query, entityID string) *Provider {
	p.locations[query] = entityID
	return p
}

// WithOptions configures the flight options returned for a date pair.
func (p *Provider) WithOptions(pair domain.DatePair, options []domain.FlightOption) *Provider {
	p.options[pairKey(pair)] = options
	return p
}

// WithResolveError configures ResolveLocation to return the given error.
func (p *Provider) WithResolveError(err error) *Provider {
	p.resolveErr = err
	return p
}

// WithSearchError configures SearchRoundTrip to return the given error.
func (p *Provider) WithSearchError(err error) *Provider {
	p.searchErr = err
	return p
}

// WithDelay configures the provider to wait the given duration before
// responding. This is useful for testing timeout behavior.
func (p *Provider) WithDelay(d time.Duration) *Provider {
	p.delay = d
	return p
}

// ResolveLocation implements domain.LocationResolver.
func (p *Provider) ResolveLocation(ctx context.Context, query string) (string, error) {
	p.mu.Lock()
	p.resolveCalls++
	p.mu.Unlock()

	if err := p.wait(ctx); err != nil {
		return "", err
	}
	if p.resolveErr != nil {
		return "", p.resolveErr
	}

	if id, ok := p.locations[query]; ok {
		return id, nil
	}
	return "", domain.ErrLocationNotFound
}

// SearchRoundTrip implements domain.RoundTripProvider.
func (p *Provider) SearchRoundTrip(ctx context.Context, originID, destinationID string, pair domain.DatePair, req domain.SearchRequest) ([]domain.FlightOption, error) {
	p.mu.Lock()
	p.searchCalls++
	p.searchPairs = append(p.searchPairs, pair)
	p.mu.Unlock()

	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	if p.searchErr != nil {
		return nil, p.searchErr
	}

	return p.options[pairKey(pair)], nil
}

// wait applies the configured delay, respecting context cancellation.
func (p *Provider) wait(ctx context.Context) error {
	if p.delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(p.delay):
		}
	}
	return ctx.Err()
}

// ResolveCalls returns the number of times ResolveLocation was called.
func (p *Provider) ResolveCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.resolveCalls
}

// SearchCalls returns the number of times SearchRoundTrip was called.
func (p *Provider) SearchCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.searchCalls
}

// SearchedPairs returns the date pairs passed to SearchRoundTrip, in call order.
func (p *Provider) SearchedPairs() []domain.DatePair {
	p.mu.Lock()
	defer p.mu.Unlock()
	pairs := make([]domain.DatePair, len(p.searchPairs))
	copy(pairs, p.searchPairs)
	return pairs
}

// Reset clears call counters and recorded pairs.
func (p *Provider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.resolveCalls = 0
	p.searchCalls = 0
	p.searchPairs = nil
}

func pairKey(pair domain.DatePair) string {
	return pair.Depart + "|" + pair.Return
}

// GeoIP is a configurable mock implementation of domain.GeoIPResolver.
type GeoIP struct {
	code string
	err  error
}

// NewGeoIP creates a mock geolocation resolver returning the given code.
func NewGeoIP(code string) *GeoIP {
	return &GeoIP{code: code}
}

// WithError configures the resolver to return the given error.
func (g *GeoIP) WithError(err error) *GeoIP {
	g.err = err
	return g
}

// CountryCode implements domain.GeoIPResolver.
func (g *GeoIP) CountryCode(ctx context.Context, ip string) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	return g.code, nil
}

// Ensure the mocks implement the domain contracts at compile time.
var (
	_ domain.LocationResolver  = (*Provider)(nil)
	_ domain.RoundTripProvider = (*Provider)(nil)
	_ domain.GeoIPResolver     = (*GeoIP)(nil)
)

// SampleOptions returns count flight options for the given date pair with
// descending prices, so sorting behavior is observable after aggregation.
func SampleOptions(pair domain.DatePair, count int, basePrice float64) []domain.FlightOption {
	options := make([]domain.FlightOption, count)
	for i := 0; i < count; i++ {
		options[i] = domain.FlightOption{
			Price:    basePrice + float64((count-i)*10),
			Currency: "MYR",
			Outbound: domain.FlightLeg{
				Airline:   "AirAsia X",
				Departure: pair.Depart + "T08:00:00",
				Arrival:   pair.Depart + "T16:00:00",
				StopCount: 0,
			},
			Inbound: domain.FlightLeg{
				Airline:   "AirAsia X",
				Departure: pair.Return + "T10:00:00",
				Arrival:   pair.Return + "T18:00:00",
				StopCount: 0,
			},
			DepartureDate: pair.Depart,
			ReturnDate:    pair.Return,
		}
	}
	return options
}
