package http

import (
	"encoding/json"

	"github.com/skytrip/flight-search-api/internal/domain"
)

// SearchResponseDTO is the data transfer object for search responses.
// Each view lists the same options filtered by trip category, all sorted by
// ascending price.
type SearchResponseDTO struct {
	All     []FlightOptionDTO `json:"all"`
	Weekday []FlightOptionDTO `json:"weekday"`
	Weekend []FlightOptionDTO `json:"weekend"`
}

// FlightOptionDTO is the data transfer object for one round-trip option.
type FlightOptionDTO struct {
	Price         float64 `json:"price"`
	Currency      string  `json:"currency"`
	Outbound      LegDTO  `json:"outbound"`
	Inbound       LegDTO  `json:"inbound"`
	DepartureDate string  `json:"departureDate"`
	ReturnDate    string  `json:"returnDate"`
}

// LegDTO is the data transfer object for one directional leg.
type LegDTO struct {
	Airline   string            `json:"airline"`
	Departure string            `json:"departure"`
	Arrival   string            `json:"arrival"`
	StopCount int               `json:"stopCount"`
	Segments  []json.RawMessage `json:"segments"`
}

// LocationDetailsDTO is the data transfer object for IP detection responses.
type LocationDetailsDTO struct {
	CountryCode string                `json:"countryCode"`
	Config      *domain.CountryConfig `json:"config,omitempty"`
}

// ToSearchResponseDTO converts a domain SearchResult to a SearchResponseDTO.
func ToSearchResponseDTO(result *domain.SearchResult) *SearchResponseDTO {
	if result == nil {
		return nil
	}

	return &SearchResponseDTO{
		All:     toOptionDTOs(result.All),
		Weekday: toOptionDTOs(result.Weekday),
		Weekend: toOptionDTOs(result.Weekend),
	}
}

func toOptionDTOs(options []domain.FlightOption) []FlightOptionDTO {
	dtos := make([]FlightOptionDTO, len(options))
	for i, opt := range options {
		dtos[i] = ToFlightOptionDTO(&opt)
	}
	return dtos
}

// ToFlightOptionDTO converts a domain FlightOption to a FlightOptionDTO.
func ToFlightOptionDTO(opt *domain.FlightOption) FlightOptionDTO {
	return FlightOptionDTO{
		Price:         opt.Price,
		Currency:      opt.Currency,
		Outbound:      toLegDTO(opt.Outbound),
		Inbound:       toLegDTO(opt.Inbound),
		DepartureDate: opt.DepartureDate,
		ReturnDate:    opt.ReturnDate,
	}
}

func toLegDTO(leg domain.FlightLeg) LegDTO {
	segments := leg.Segments
	if segments == nil {
		segments = []json.RawMessage{}
	}

	return LegDTO{
		Airline:   leg.Airline,
		Departure: leg.Departure,
		Arrival:   leg.Arrival,
		StopCount: leg.StopCount,
		Segments:  segments,
	}
}

// ToLocationDetailsDTO converts domain LocationDetails to its DTO.
func ToLocationDetailsDTO(details domain.LocationDetails) LocationDetailsDTO {
	return LocationDetailsDTO{
		CountryCode: details.CountryCode,
		Config:      details.CountryConfig,
	}
}
