// Package domain contains the core business entities and rules for the flight
// search system. These entities are provider-agnostic and form the foundation
// upon which all other components are built.
package domain

import (
	"encoding/json"
	"time"
)

// UnknownAirline is the sentinel airline name substituted when the upstream
// payload omits the marketing carrier for a leg.
const UnknownAirline = "Unknown Airline"

// FlightLeg is one directional segment of a round-trip itinerary.
// Timestamps are local ISO-8601 date-time strings without an explicit
// timezone, passed through from the upstream provider.
type FlightLeg struct {
	// Airline is the display name of the first marketing carrier
	Airline string `json:"airline"`

	// Departure is the local departure timestamp (e.g., "2024-12-31T14:55:00")
	Departure string `json:"departure"`

	// Arrival is the local arrival timestamp
	Arrival string `json:"arrival"`

	// StopCount is the number of stops on this leg
	StopCount int `json:"stopCount"`

	// Segments holds the raw upstream segment records, passed through unmodified
	Segments []json.RawMessage `json:"segments"`
}

// FlightOption is one priced round-trip itinerary. Options are created fresh
// during normalization and never mutated afterwards.
type FlightOption struct {
	// Price is the upstream raw price; 0 when the upstream omits it
	Price float64 `json:"price"`

	// Currency is always the caller-supplied currency, never the upstream's
	Currency string `json:"currency"`

	// Outbound is the first leg of the itinerary
	Outbound FlightLeg `json:"outbound"`

	// Inbound is the second leg of the itinerary
	Inbound FlightLeg `json:"inbound"`

	// DepartureDate is the calendar date of the outbound departure (YYYY-MM-DD)
	DepartureDate string `json:"departureDate"`

	// ReturnDate is the calendar date of the inbound departure (YYYY-MM-DD)
	ReturnDate string `json:"returnDate"`
}

// TripCategory classifies a round trip by the kind of days it spans.
type TripCategory int

// Trip categories.
const (
	// TripMixed covers trips where the two travel dates disagree
	// (one weekend, one weekday) or where a date is missing.
	TripMixed TripCategory = iota

	// TripWeekday covers trips departing and returning on weekdays.
	TripWeekday

	// TripWeekend covers trips departing and returning on Saturday or Sunday.
	TripWeekend
)

// Category classifies the option by its departure and return dates.
// An option with an unparsable or missing date on either side is TripMixed:
// it cannot prove both dates fall on the same kind of day.
func (o FlightOption) Category() TripCategory {
	depart, err := time.Parse(DateLayout, o.DepartureDate)
	if err != nil {
		return TripMixed
	}
	ret, err := time.Parse(DateLayout, o.ReturnDate)
	if err != nil {
		return TripMixed
	}

	departWeekend := isWeekendDay(depart.Weekday())
	returnWeekend := isWeekendDay(ret.Weekday())

	switch {
	case departWeekend && returnWeekend:
		return TripWeekend
	case !departWeekend && !returnWeekend:
		return TripWeekday
	default:
		return TripMixed
	}
}

// isWeekendDay reports whether the weekday is Saturday or Sunday.
func isWeekendDay(d time.Weekday) bool {
	return d == time.Saturday || d == time.Sunday
}

// SearchResult is the aggregated output of a flight search: every normalized
// option across every date pair, plus the weekday-only and weekend-only
// views. All three slices are sorted by ascending price with stable ties.
type SearchResult struct {
	// All contains every option from every searched date pair
	All []FlightOption `json:"all"`

	// Weekday contains options departing and returning on weekdays
	Weekday []FlightOption `json:"weekday"`

	// Weekend contains options departing and returning on weekend days
	Weekend []FlightOption `json:"weekend"`
}
