package usecase

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/skytrip/flight-search-api/internal/domain"
	"github.com/skytrip/flight-search-api/internal/market"
)

// LocationUseCase resolves caller IP addresses to country/market
// configurations and exposes the full market table.
type LocationUseCase interface {
	// Detect resolves the IP to a country code and its market
	// configuration. Geolocation failures are lenient: the result carries
	// an empty country code and a nil config instead of an error.
	Detect(ctx context.Context, ip string) domain.LocationDetails

	// Countries returns every entry of the market table.
	Countries() []domain.CountryConfig
}

// locationUseCase implements LocationUseCase over a geolocation client and
// the immutable market table loaded at startup.
type locationUseCase struct {
	geo   domain.GeoIPResolver
	table *market.Table
}

// NewLocationUseCase creates a new LocationUseCase.
func NewLocationUseCase(geo domain.GeoIPResolver, table *market.Table) LocationUseCase {
	return &locationUseCase{
		geo:   geo,
		table: table,
	}
}

// Detect implements LocationUseCase.Detect.
func (uc *locationUseCase) Detect(ctx context.Context, ip string) domain.LocationDetails {
	code, err := uc.geo.CountryCode(ctx, ip)
	if err != nil {
		log.Warn().Err(err).Str("ip", ip).Msg("IP geolocation failed")
		return domain.LocationDetails{}
	}

	details := domain.LocationDetails{CountryCode: code}
	if cfg, ok := uc.table.Lookup(code); ok {
		details.CountryConfig = &cfg
	}
	return details
}

// Countries implements LocationUseCase.Countries.
func (uc *locationUseCase) Countries() []domain.CountryConfig {
	return uc.table.All()
}

// Ensure locationUseCase implements LocationUseCase at compile time.
var _ LocationUseCase = (*locationUseCase)(nil)
