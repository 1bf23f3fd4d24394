package skyscanner

import (
	"encoding/json"
	"time"

	"github.com/skytrip/flight-search-api/internal/domain"
)

// Leg timestamp layouts accepted from the upstream. Legs are local date-times
// without an explicit timezone, but a zoned variant is tolerated.
var legTimeLayouts = []string{
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// normalize converts a raw search response into domain flight options.
// The caller's currency is stamped onto every option; any currency field in
// the upstream payload is ignored. Normalization never fails: missing or
// malformed fields degrade to documented defaults.
func normalize(resp *searchResponse, currency string) []domain.FlightOption {
	if resp == nil {
		return []domain.FlightOption{}
	}

	itineraries := resp.Data.Itineraries
	options := make([]domain.FlightOption, 0, len(itineraries))

	for _, it := range itineraries {
		outbound := legAt(it.Legs, 0)
		inbound := legAt(it.Legs, 1)

		options = append(options, domain.FlightOption{
			Price:         priceOf(it),
			Currency:      currency,
			Outbound:      normalizeLeg(outbound),
			Inbound:       normalizeLeg(inbound),
			DepartureDate: departureDateOf(outbound),
			ReturnDate:    departureDateOf(inbound),
		})
	}

	return options
}

// legAt returns a pointer to the leg at the index, or nil when absent.
func legAt(legs []rawLeg, i int) *rawLeg {
	if i >= len(legs) {
		return nil
	}
	return &legs[i]
}

// priceOf extracts the itinerary's raw price, defaulting to 0.
func priceOf(it rawItinerary) float64 {
	if it.Price == nil || it.Price.Raw == nil {
		return 0
	}
	return *it.Price.Raw
}

// normalizeLeg converts one raw leg to a domain leg. A missing leg yields
// the sentinel airline, empty timestamps, zero stops, and no segments.
func normalizeLeg(leg *rawLeg) domain.FlightLeg {
	if leg == nil {
		return domain.FlightLeg{
			Airline:  domain.UnknownAirline,
			Segments: []json.RawMessage{},
		}
	}

	segments := leg.Segments
	if segments == nil {
		segments = []json.RawMessage{}
	}

	return domain.FlightLeg{
		Airline:   airlineOf(leg),
		Departure: leg.Departure,
		Arrival:   leg.Arrival,
		StopCount: stopCountOf(leg),
		Segments:  segments,
	}
}

// airlineOf returns the first marketing carrier's display name, or the
// sentinel when the carrier list is absent or empty.
func airlineOf(leg *rawLeg) string {
	if leg.Carriers == nil || len(leg.Carriers.Marketing) == 0 {
		return domain.UnknownAirline
	}
	if name := leg.Carriers.Marketing[0].Name; name != "" {
		return name
	}
	return domain.UnknownAirline
}

// stopCountOf prefers the leg's reported stop count and falls back to the
// number of segment entries.
func stopCountOf(leg *rawLeg) int {
	if leg.StopCount != nil {
		return *leg.StopCount
	}
	return len(leg.Segments)
}

// departureDateOf extracts the calendar-date portion of the leg's departure
// timestamp, or "" when the leg or its timestamp is missing or unparsable.
func departureDateOf(leg *rawLeg) string {
	if leg == nil || leg.Departure == "" {
		return ""
	}

	for _, layout := range legTimeLayouts {
		if t, err := time.Parse(layout, leg.Departure); err == nil {
			return t.Format(domain.DateLayout)
		}
	}
	return ""
}
