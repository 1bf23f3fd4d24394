package domain

import "context"

//go:generate mockgen -source=provider.go -destination=mock_provider.go -package=domain

// LocationResolver resolves a free-text place name to an opaque location
// identifier understood by the round-trip search provider.
type LocationResolver interface {
	// ResolveLocation returns the identifier of the first candidate matching
	// the query. It returns an error wrapping ErrLocationNotFound when the
	// provider has no candidates, and an UpstreamError when the call itself
	// fails. The first result wins; no ranking or disambiguation happens.
	ResolveLocation(ctx context.Context, query string) (string, error)
}

// RoundTripProvider performs one upstream round-trip search for a single
// (depart, return) date pair and returns the normalized options.
type RoundTripProvider interface {
	// SearchRoundTrip issues one search with the resolved identifiers, the
	// pair's dates, and the request's passenger/cabin/market/currency
	// parameters. Normalization is lenient: missing upstream fields degrade
	// to documented defaults and never produce an error.
	SearchRoundTrip(ctx context.Context, originID, destinationID string, pair DatePair, req SearchRequest) ([]FlightOption, error)
}

// GeoIPResolver resolves an IP address to a 2-letter country code.
type GeoIPResolver interface {
	// CountryCode returns the ISO 3166-1 alpha-2 code for the IP address.
	// Loopback or empty addresses resolve to the service's own egress IP.
	CountryCode(ctx context.Context, ip string) (string, error)
}
