package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/skytrip/flight-search-api/internal/domain"
)

// searchRequest returns a valid three-day-window request for tests.
func searchRequest() domain.SearchRequest {
	return domain.SearchRequest{
		OriginQuery:      "Kuala Lumpur",
		DestinationQuery: "London",
		DepartDate:       "2024-12-14",
		ReturnDate:       "2024-12-16",
		Adults:           1,
		CabinClass:       domain.CabinEconomy,
		Currency:         "USD",
		Market:           "US",
	}
}

// option creates a minimal flight option with the given price and dates.
func option(price float64, departDate, returnDate string) domain.FlightOption {
	return domain.FlightOption{
		Price:         price,
		Currency:      "USD",
		Outbound:      domain.FlightLeg{Airline: "Test Air", Departure: departDate + "T08:00:00"},
		Inbound:       domain.FlightLeg{Airline: "Test Air", Departure: returnDate + "T18:00:00"},
		DepartureDate: departDate,
		ReturnDate:    returnDate,
	}
}

// setupResolver creates a mock resolver returning fixed identifiers.
func setupResolver(ctrl *gomock.Controller, originID, destinationID string) *domain.MockLocationResolver {
	resolver := domain.NewMockLocationResolver(ctrl)
	resolver.EXPECT().ResolveLocation(gomock.Any(), "Kuala Lumpur").Return(originID, nil).AnyTimes()
	resolver.EXPECT().ResolveLocation(gomock.Any(), "London").Return(destinationID, nil).AnyTimes()
	return resolver
}

func TestSearchHappyPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver := setupResolver(ctrl, "ID-A", "ID-B")
	provider := domain.NewMockRoundTripProvider(ctrl)

	// Three-day window: exactly three date pairs, one upstream call each.
	provider.EXPECT().
		SearchRoundTrip(gomock.Any(), "ID-A", "ID-B", domain.DatePair{Depart: "2024-12-14", Return: "2024-12-15"}, gomock.Any()).
		Return([]domain.FlightOption{option(300, "2024-12-14", "2024-12-15")}, nil)
	provider.EXPECT().
		SearchRoundTrip(gomock.Any(), "ID-A", "ID-B", domain.DatePair{Depart: "2024-12-14", Return: "2024-12-16"}, gomock.Any()).
		Return([]domain.FlightOption{option(150, "2024-12-14", "2024-12-16")}, nil)
	provider.EXPECT().
		SearchRoundTrip(gomock.Any(), "ID-A", "ID-B", domain.DatePair{Depart: "2024-12-15", Return: "2024-12-16"}, gomock.Any()).
		Return([]domain.FlightOption{option(200, "2024-12-15", "2024-12-16")}, nil)

	uc := NewFlightSearchUseCase(resolver, provider, nil)

	result, err := uc.Search(context.Background(), searchRequest())
	require.NoError(t, err)
	require.NotNil(t, result)

	// All three pairs contributed, sorted by ascending price.
	require.Len(t, result.All, 3)
	assert.Equal(t, float64(150), result.All[0].Price)
	assert.Equal(t, float64(200), result.All[1].Price)
	assert.Equal(t, float64(300), result.All[2].Price)

	// Sat-Sun sits in weekend; Sat-Mon and Sun-Mon trips are mixed.
	require.Len(t, result.Weekend, 1)
	assert.Equal(t, float64(300), result.Weekend[0].Price)
	assert.Empty(t, result.Weekday)
}

func TestSearchOriginNotFoundShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver := domain.NewMockLocationResolver(ctrl)
	resolver.EXPECT().ResolveLocation(gomock.Any(), "Kuala Lumpur").
		Return("", domain.ErrLocationNotFound)
	resolver.EXPECT().ResolveLocation(gomock.Any(), "London").
		Return("ID-B", nil)

	provider := domain.NewMockRoundTripProvider(ctrl)
	provider.EXPECT().SearchRoundTrip(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	uc := NewFlightSearchUseCase(resolver, provider, nil)

	result, err := uc.Search(context.Background(), searchRequest())
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domain.ErrLocationNotFound))
	assert.Contains(t, err.Error(), "origin")
	assert.Contains(t, err.Error(), "Kuala Lumpur")
}

func TestSearchDestinationNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver := domain.NewMockLocationResolver(ctrl)
	resolver.EXPECT().ResolveLocation(gomock.Any(), "Kuala Lumpur").Return("ID-A", nil)
	resolver.EXPECT().ResolveLocation(gomock.Any(), "London").
		Return("", domain.ErrLocationNotFound)

	provider := domain.NewMockRoundTripProvider(ctrl)
	provider.EXPECT().SearchRoundTrip(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	uc := NewFlightSearchUseCase(resolver, provider, nil)

	_, err := uc.Search(context.Background(), searchRequest())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrLocationNotFound))
	assert.Contains(t, err.Error(), "destination")
}

func TestSearchResolverUpstreamFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver := domain.NewMockLocationResolver(ctrl)
	resolver.EXPECT().ResolveLocation(gomock.Any(), "Kuala Lumpur").
		Return("", errors.New("connection reset"))
	resolver.EXPECT().ResolveLocation(gomock.Any(), "London").Return("ID-B", nil)

	provider := domain.NewMockRoundTripProvider(ctrl)
	provider.EXPECT().SearchRoundTrip(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	uc := NewFlightSearchUseCase(resolver, provider, nil)

	_, err := uc.Search(context.Background(), searchRequest())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUpstreamFailure))
	assert.False(t, errors.Is(err, domain.ErrLocationNotFound))
}

func TestSearchZeroPairsIsClientError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver := setupResolver(ctrl, "ID-A", "ID-B")
	provider := domain.NewMockRoundTripProvider(ctrl)
	provider.EXPECT().SearchRoundTrip(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	uc := NewFlightSearchUseCase(resolver, provider, nil)

	// Same-day return passes request validation but yields no pairs.
	req := searchRequest()
	req.ReturnDate = req.DepartDate

	_, err := uc.Search(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidRequest))
	assert.Contains(t, err.Error(), "returnDate must be after departDate")
}

func TestSearchFailFastOnAnyPairFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver := setupResolver(ctrl, "ID-A", "ID-B")
	provider := domain.NewMockRoundTripProvider(ctrl)
	provider.EXPECT().
		SearchRoundTrip(gomock.Any(), "ID-A", "ID-B", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, pair domain.DatePair, _ domain.SearchRequest) ([]domain.FlightOption, error) {
			if pair.Return == "2024-12-16" && pair.Depart == "2024-12-14" {
				return nil, errors.New("status 502")
			}
			return []domain.FlightOption{option(100, pair.Depart, pair.Return)}, nil
		}).
		Times(3)

	uc := NewFlightSearchUseCase(resolver, provider, nil)

	result, err := uc.Search(context.Background(), searchRequest())
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domain.ErrUpstreamFailure))
}

func TestSearchFlattenPreservesPairOrderForTies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver := setupResolver(ctrl, "ID-A", "ID-B")
	provider := domain.NewMockRoundTripProvider(ctrl)

	first := option(250, "2024-12-14", "2024-12-15")
	first.Outbound.Airline = "pair-one"
	second := option(250, "2024-12-14", "2024-12-16")
	second.Outbound.Airline = "pair-two"
	third := option(250, "2024-12-15", "2024-12-16")
	third.Outbound.Airline = "pair-three"

	provider.EXPECT().
		SearchRoundTrip(gomock.Any(), "ID-A", "ID-B", domain.DatePair{Depart: "2024-12-14", Return: "2024-12-15"}, gomock.Any()).
		Return([]domain.FlightOption{first}, nil)
	provider.EXPECT().
		SearchRoundTrip(gomock.Any(), "ID-A", "ID-B", domain.DatePair{Depart: "2024-12-14", Return: "2024-12-16"}, gomock.Any()).
		Return([]domain.FlightOption{second}, nil)
	provider.EXPECT().
		SearchRoundTrip(gomock.Any(), "ID-A", "ID-B", domain.DatePair{Depart: "2024-12-15", Return: "2024-12-16"}, gomock.Any()).
		Return([]domain.FlightOption{third}, nil)

	uc := NewFlightSearchUseCase(resolver, provider, nil)

	result, err := uc.Search(context.Background(), searchRequest())
	require.NoError(t, err)
	require.Len(t, result.All, 3)

	// Equal prices: pair enumeration order survives the stable sort.
	assert.Equal(t, "pair-one", result.All[0].Outbound.Airline)
	assert.Equal(t, "pair-two", result.All[1].Outbound.Airline)
	assert.Equal(t, "pair-three", result.All[2].Outbound.Airline)
}

func TestSearchWindowTooLarge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver := domain.NewMockLocationResolver(ctrl)
	resolver.EXPECT().ResolveLocation(gomock.Any(), gomock.Any()).Times(0)
	provider := domain.NewMockRoundTripProvider(ctrl)
	provider.EXPECT().SearchRoundTrip(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	uc := NewFlightSearchUseCase(resolver, provider, &Config{MaxWindowDays: 3})

	req := searchRequest()
	req.ReturnDate = "2024-12-20" // 7-day window

	_, err := uc.Search(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidRequest))
	assert.Contains(t, err.Error(), "exceeds the maximum")
}

func TestSearchInvalidRequestRejectedBeforeResolution(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver := domain.NewMockLocationResolver(ctrl)
	resolver.EXPECT().ResolveLocation(gomock.Any(), gomock.Any()).Times(0)
	provider := domain.NewMockRoundTripProvider(ctrl)

	uc := NewFlightSearchUseCase(resolver, provider, nil)

	req := searchRequest()
	req.OriginQuery = ""

	_, err := uc.Search(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidRequest))
}

func TestSearchConcurrencyCapIsRespected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver := setupResolver(ctrl, "ID-A", "ID-B")
	provider := domain.NewMockRoundTripProvider(ctrl)

	var mu sync.Mutex
	inFlight, peak := 0, 0

	provider.EXPECT().
		SearchRoundTrip(gomock.Any(), "ID-A", "ID-B", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, pair domain.DatePair, _ domain.SearchRequest) ([]domain.FlightOption, error) {
			mu.Lock()
			inFlight++
			if inFlight > peak {
				peak = inFlight
			}
			mu.Unlock()

			time.Sleep(10 * time.Millisecond)

			mu.Lock()
			inFlight--
			mu.Unlock()
			return nil, nil
		}).
		AnyTimes()

	uc := NewFlightSearchUseCase(resolver, provider, &Config{MaxConcurrent: 2})

	_, err := uc.Search(context.Background(), searchRequest())
	require.NoError(t, err)
	assert.LessOrEqual(t, peak, 2)
}
