package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/skytrip/flight-search-api/internal/domain"
	"github.com/skytrip/flight-search-api/internal/infrastructure/metrics"
)

// Default configuration values.
const (
	DefaultGlobalTimeout = 30 * time.Second
	DefaultMaxConcurrent = 8
	DefaultMaxWindowDays = 14
)

// FlightSearchUseCase defines the interface for flight search operations.
type FlightSearchUseCase interface {
	// Search resolves both place names, fans one upstream search out per
	// candidate date pair, and returns the merged, categorized,
	// price-sorted result.
	Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResult, error)
}

// Config contains configuration options for the use case.
type Config struct {
	// GlobalTimeout bounds the whole search, resolution included.
	GlobalTimeout time.Duration

	// MaxConcurrent caps the number of upstream searches in flight at once.
	MaxConcurrent int

	// MaxWindowDays caps the inclusive day count of the search window.
	// The pair count grows quadratically with the window, and every pair
	// costs one upstream call.
	MaxWindowDays int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		GlobalTimeout: DefaultGlobalTimeout,
		MaxConcurrent: DefaultMaxConcurrent,
		MaxWindowDays: DefaultMaxWindowDays,
	}
}

// flightSearchUseCase implements FlightSearchUseCase.
type flightSearchUseCase struct {
	locations domain.LocationResolver
	provider  domain.RoundTripProvider
	cfg       Config
}

// NewFlightSearchUseCase creates a new FlightSearchUseCase.
// If config is nil, default values are used.
func NewFlightSearchUseCase(locations domain.LocationResolver, provider domain.RoundTripProvider, config *Config) FlightSearchUseCase {
	cfg := DefaultConfig()
	if config != nil {
		if config.GlobalTimeout > 0 {
			cfg.GlobalTimeout = config.GlobalTimeout
		}
		if config.MaxConcurrent > 0 {
			cfg.MaxConcurrent = config.MaxConcurrent
		}
		if config.MaxWindowDays > 0 {
			cfg.MaxWindowDays = config.MaxWindowDays
		}
	}

	return &flightSearchUseCase{
		locations: locations,
		provider:  provider,
		cfg:       cfg,
	}
}

// Search implements FlightSearchUseCase.Search.
//
// Failure policy: fail-fast. Any upstream search failure fails the whole
// request; there is no partial-result tolerance.
func (uc *flightSearchUseCase) Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResult, error) {
	start := time.Now()
	metrics.SearchesTotal.Inc()

	req.SetDefaults()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if days := windowDays(req.DepartDate, req.ReturnDate); days > uc.cfg.MaxWindowDays {
		return nil, fmt.Errorf("%w: date window of %d days exceeds the maximum of %d",
			domain.ErrInvalidRequest, days, uc.cfg.MaxWindowDays)
	}

	ctx, cancel := context.WithTimeout(ctx, uc.cfg.GlobalTimeout)
	defer cancel()

	// Client-input failures short-circuit here, before any search call.
	originID, destinationID, err := uc.resolveEndpoints(ctx, req)
	if err != nil {
		metrics.SearchFailuresTotal.Inc()
		return nil, err
	}

	pairs := DatePairs(req.DepartDate, req.ReturnDate)
	if len(pairs) == 0 {
		return nil, fmt.Errorf("%w: returnDate must be after departDate to form a search window", domain.ErrInvalidRequest)
	}

	options, err := uc.searchAllPairs(ctx, originID, destinationID, pairs, req)
	if err != nil {
		metrics.SearchFailuresTotal.Inc()
		log.Error().Err(err).
			Str("origin", req.OriginQuery).
			Str("destination", req.DestinationQuery).
			Int("date_pairs", len(pairs)).
			Msg("Flight search failed")
		return nil, err
	}

	result := categorize(options)

	metrics.SearchDurationSeconds.Observe(time.Since(start).Seconds())
	log.Debug().
		Int("date_pairs", len(pairs)).
		Int("options", len(result.All)).
		Int("weekday", len(result.Weekday)).
		Int("weekend", len(result.Weekend)).
		Dur("duration", time.Since(start)).
		Msg("Flight search completed")

	return &result, nil
}

// resolveEndpoints resolves origin and destination concurrently.
// A NotFound on either side becomes a client-input error naming that side;
// the origin is reported first when both fail.
func (uc *flightSearchUseCase) resolveEndpoints(ctx context.Context, req domain.SearchRequest) (string, string, error) {
	type resolution struct {
		id  string
		err error
	}

	var (
		origin      resolution
		destination resolution
		wg          sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		origin.id, origin.err = uc.locations.ResolveLocation(ctx, req.OriginQuery)
	}()
	go func() {
		defer wg.Done()
		destination.id, destination.err = uc.locations.ResolveLocation(ctx, req.DestinationQuery)
	}()
	wg.Wait()

	if origin.err != nil {
		return "", "", wrapResolutionError("origin", req.OriginQuery, origin.err)
	}
	if destination.err != nil {
		return "", "", wrapResolutionError("destination", req.DestinationQuery, destination.err)
	}

	return origin.id, destination.id, nil
}

// wrapResolutionError turns a resolver failure into the caller-facing error:
// NotFound keeps its client-input category with the failing side named,
// anything else stays an upstream failure.
func wrapResolutionError(side, query string, err error) error {
	if errors.Is(err, domain.ErrLocationNotFound) {
		return fmt.Errorf("%w: %s %q could not be resolved", domain.ErrLocationNotFound, side, query)
	}
	return domain.NewUpstreamError("auto-complete", err)
}

// searchAllPairs issues one upstream search per date pair, capped at
// MaxConcurrent in flight, and flattens the normalized options preserving
// pair order (pair i's options precede pair j's for i < j).
func (uc *flightSearchUseCase) searchAllPairs(ctx context.Context, originID, destinationID string, pairs []domain.DatePair, req domain.SearchRequest) ([]domain.FlightOption, error) {
	perPair := make([][]domain.FlightOption, len(pairs))
	errs := make([]error, len(pairs))

	sem := make(chan struct{}, uc.cfg.MaxConcurrent)
	var wg sync.WaitGroup

	for i, pair := range pairs {
		wg.Add(1)
		go func(i int, pair domain.DatePair) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				errs[i] = ctx.Err()
				return
			}

			perPair[i], errs[i] = uc.provider.SearchRoundTrip(ctx, originID, destinationID, pair, req)
		}(i, pair)
	}
	wg.Wait()

	// Fail-fast on the first failing pair in enumeration order.
	for i, err := range errs {
		if err == nil {
			continue
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, domain.NewUpstreamError(
			fmt.Sprintf("search-roundtrip %s/%s", pairs[i].Depart, pairs[i].Return), err)
	}

	var flattened []domain.FlightOption
	for _, options := range perPair {
		flattened = append(flattened, options...)
	}
	return flattened, nil
}

// Ensure flightSearchUseCase implements FlightSearchUseCase at compile time.
var _ FlightSearchUseCase = (*flightSearchUseCase)(nil)
