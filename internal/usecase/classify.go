package usecase

import (
	"sort"

	"github.com/skytrip/flight-search-api/internal/domain"
)

// categorize splits the flattened options into the three result views and
// sorts each by ascending price. Sorting is stable: equal prices keep the
// relative order produced by flattening, which itself preserves date-pair
// order, so ties are deterministic.
//
// An option whose legs disagree (one weekend date, one weekday date) appears
// in All only, never in either subset.
func categorize(options []domain.FlightOption) domain.SearchResult {
	result := domain.SearchResult{
		All:     make([]domain.FlightOption, 0, len(options)),
		Weekday: make([]domain.FlightOption, 0),
		Weekend: make([]domain.FlightOption, 0),
	}

	for _, opt := range options {
		result.All = append(result.All, opt)

		switch opt.Category() {
		case domain.TripWeekday:
			result.Weekday = append(result.Weekday, opt)
		case domain.TripWeekend:
			result.Weekend = append(result.Weekend, opt)
		}
	}

	sortByPrice(result.All)
	sortByPrice(result.Weekday)
	sortByPrice(result.Weekend)

	return result
}

// sortByPrice sorts options by ascending price, keeping ties stable.
func sortByPrice(options []domain.FlightOption) {
	sort.SliceStable(options, func(i, j int) bool {
		return options[i].Price < options[j].Price
	})
}
