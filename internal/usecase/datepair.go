// Package usecase contains the business logic for flight search operations.
// It orchestrates location resolution and the fan-out of one upstream search
// per candidate date pair.
package usecase

import (
	"time"

	"github.com/skytrip/flight-search-api/internal/domain"
)

// DatePairs enumerates every ordered (depart, return) combination inside the
// inclusive window [start, end]. For a window of n days it produces exactly
// n*(n-1)/2 pairs, grouped by increasing depart date then increasing return
// date. The cost is quadratic in the window size and each pair later costs
// one upstream search call, so callers must bound the window.
//
// An unparsable date or an end that is not strictly after start yields an
// empty sequence, not an error; callers treat empty as "no valid window".
func DatePairs(start, end string) []domain.DatePair {
	from, err := time.Parse(domain.DateLayout, start)
	if err != nil {
		return nil
	}
	to, err := time.Parse(domain.DateLayout, end)
	if err != nil {
		return nil
	}
	if !to.After(from) {
		return nil
	}

	var days []string
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(domain.DateLayout))
	}

	pairs := make([]domain.DatePair, 0, len(days)*(len(days)-1)/2)
	for i := 0; i < len(days); i++ {
		for j := i + 1; j < len(days); j++ {
			pairs = append(pairs, domain.DatePair{
				Depart: days[i],
				Return: days[j],
			})
		}
	}
	return pairs
}

// windowDays returns the inclusive day count of the window, or 0 when the
// window is invalid.
func windowDays(start, end string) int {
	from, err := time.Parse(domain.DateLayout, start)
	if err != nil {
		return 0
	}
	to, err := time.Parse(domain.DateLayout, end)
	if err != nil {
		return 0
	}
	if to.Before(from) {
		return 0
	}
	return int(to.Sub(from).Hours()/24) + 1
}
