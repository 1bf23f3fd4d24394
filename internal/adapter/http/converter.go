// Package http provides the HTTP handler layer for the flight search API.
package http

import (
	"github.com/skytrip/flight-search-api/internal/domain"
)

// ToDomainRequest converts a SearchFlightsRequest to a domain.SearchRequest.
// Absent optional fields stay at their zero values; the domain layer fills
// in the documented defaults.
func ToDomainRequest(req *SearchFlightsRequest) domain.SearchRequest {
	out := domain.SearchRequest{
		OriginQuery:      req.Origin,
		DestinationQuery: req.Destination,
		DepartDate:       req.DepartDate,
		ReturnDate:       req.ReturnDate,
		CabinClass:       domain.CabinClass(req.CabinClass),
		Currency:         req.Currency,
		Market:           req.Market,
	}

	if req.Adults != nil {
		out.Adults = *req.Adults
	}
	if req.Children != nil {
		out.Children = *req.Children
	}
	if req.Infants != nil {
		out.Infants = *req.Infants
	}

	return out
}
