package integration

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skytrip/flight-search-api/internal/domain"
	"github.com/skytrip/flight-search-api/internal/market"
	"github.com/skytrip/flight-search-api/internal/usecase"
	"github.com/skytrip/flight-search-api/test/mock"
	"github.com/skytrip/flight-search-api/test/testutil"
)

func mustLoadTable(t *testing.T) *market.Table {
	t.Helper()
	table, err := market.Load(testutil.CountriesConfigPath(t))
	require.NoError(t, err)
	return table
}

func defaultDomainRequest() domain.SearchRequest {
	return domain.SearchRequest{
		OriginQuery:      "Kuala Lumpur",
		DestinationQuery: "London",
		DepartDate:       DepartDate,
		ReturnDate:       ReturnDate,
	}
}

func TestSearch_FansOutOnePairPerCombination(t *testing.T) {
	provider := DefaultProvider()
	uc := usecase.NewFlightSearchUseCase(provider, provider, nil)

	result, err := uc.Search(context.Background(), defaultDomainRequest())
	require.NoError(t, err)

	// 3-day window: 3 pairs, 2 options each
	assert.Equal(t, 3, provider.SearchCalls())
	assert.Len(t, result.All, 6)

	pairs := provider.SearchedPairs()
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Depart != pairs[j].Depart {
			return pairs[i].Depart < pairs[j].Depart
		}
		return pairs[i].Return < pairs[j].Return
	})
	assert.Equal(t, []domain.DatePair{
		{Depart: "2024-12-14", Return: "2024-12-15"},
		{Depart: "2024-12-14", Return: "2024-12-16"},
		{Depart: "2024-12-15", Return: "2024-12-16"},
	}, pairs)
}

func TestSearch_ResultsSortedAndCategorized(t *testing.T) {
	provider := DefaultProvider()
	uc := usecase.NewFlightSearchUseCase(provider, provider, nil)

	result, err := uc.Search(context.Background(), defaultDomainRequest())
	require.NoError(t, err)

	for i := 1; i < len(result.All); i++ {
		assert.LessOrEqual(t, result.All[i-1].Price, result.All[i].Price)
	}

	// 14->15 is Sat->Sun; the other two pairs touch a weekday.
	require.Len(t, result.Weekend, 2)
	for _, opt := range result.Weekend {
		assert.Equal(t, "2024-12-14", opt.DepartureDate)
		assert.Equal(t, "2024-12-15", opt.ReturnDate)
	}
	assert.Empty(t, result.Weekday, "every other pair mixes weekend and weekday days")
	assert.Len(t, result.All, 6)
}

func TestSearch_UnknownOriginShortCircuits(t *testing.T) {
	provider := mock.NewProvider().WithLocation("London", "27544008")
	uc := usecase.NewFlightSearchUseCase(provider, provider, nil)

	req := defaultDomainRequest()
	req.OriginQuery = "Atlantis"

	_, err := uc.Search(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLocationNotFound)
	assert.Contains(t, err.Error(), "Atlantis")
	assert.Zero(t, provider.SearchCalls(), "no search call is made when resolution fails")
}

func TestSearch_EqualDatesYieldInvalidRequest(t *testing.T) {
	provider := DefaultProvider()
	uc := usecase.NewFlightSearchUseCase(provider, provider, nil)

	req := defaultDomainRequest()
	req.ReturnDate = req.DepartDate

	_, err := uc.Search(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	assert.Zero(t, provider.SearchCalls())
}

func TestSearch_PairFailureFailsWholeRequest(t *testing.T) {
	provider := DefaultProvider().WithSearchError(errors.New("status 500"))
	uc := usecase.NewFlightSearchUseCase(provider, provider, nil)

	_, err := uc.Search(context.Background(), defaultDomainRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstreamFailure)
}

func TestSearch_GlobalTimeout(t *testing.T) {
	provider := DefaultProvider().WithDelay(200 * time.Millisecond)
	uc := usecase.NewFlightSearchUseCase(provider, provider, &usecase.Config{
		GlobalTimeout: 50 * time.Millisecond,
	})

	_, err := uc.Search(context.Background(), defaultDomainRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestLocations_DetectUsesMarketTable(t *testing.T) {
	table := mustLoadTable(t)
	uc := usecase.NewLocationUseCase(mock.NewGeoIP("MY"), table)

	details := uc.Detect(context.Background(), "103.86.50.1")
	assert.Equal(t, "MY", details.CountryCode)
	require.NotNil(t, details.CountryConfig)
	assert.Equal(t, "MYR", details.CountryConfig.Currency)
	assert.Equal(t, "RM", details.CountryConfig.CurrencySymbol)
}

func TestLocations_CountriesExposeBundledTable(t *testing.T) {
	table := mustLoadTable(t)
	uc := usecase.NewLocationUseCase(mock.NewGeoIP(""), table)

	countries := uc.Countries()
	assert.NotEmpty(t, countries)

	_, found := table.Lookup("Malaysia")
	assert.True(t, found)
}
