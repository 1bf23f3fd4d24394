package skyscanner

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skytrip/flight-search-api/internal/domain"
)

func loadSearchFixture(t *testing.T) *searchResponse {
	t.Helper()

	raw, err := os.ReadFile("testdata/search_roundtrip_response.json")
	require.NoError(t, err)

	var resp searchResponse
	require.NoError(t, json.Unmarshal(raw, &resp))
	return &resp
}

func TestNormalizeFixture(t *testing.T) {
	resp := loadSearchFixture(t)

	options := normalize(resp, "USD")
	require.Len(t, options, 2)

	full := options[0]
	assert.Equal(t, 450.25, full.Price)
	assert.Equal(t, "USD", full.Currency)
	assert.Equal(t, "AirAsia X", full.Outbound.Airline)
	assert.Equal(t, "AirAsia X", full.Inbound.Airline)
	assert.Equal(t, 1, full.Outbound.StopCount)
	assert.Equal(t, "2024-12-14T08:55:00", full.Outbound.Departure)
	assert.Equal(t, "2024-12-15T20:55:00", full.Outbound.Arrival)
	assert.Len(t, full.Outbound.Segments, 2)
	assert.Equal(t, "2024-12-14", full.DepartureDate)
	assert.Equal(t, "2024-12-20", full.ReturnDate)

	sparse := options[1]
	assert.Equal(t, float64(0), sparse.Price, "missing price.raw defaults to 0")
	assert.Equal(t, "USD", sparse.Currency)
	assert.Equal(t, domain.UnknownAirline, sparse.Outbound.Airline, "empty marketing carriers fall back to the sentinel")
	assert.Equal(t, 1, sparse.Outbound.StopCount, "missing stopCount falls back to segment count")
	assert.Equal(t, domain.UnknownAirline, sparse.Inbound.Airline, "missing inbound leg yields the sentinel")
	assert.Empty(t, sparse.Inbound.Segments)
	assert.NotNil(t, sparse.Inbound.Segments)
	assert.Equal(t, "2024-12-14", sparse.DepartureDate)
	assert.Equal(t, "", sparse.ReturnDate)
}

func TestNormalizeCurrencyOverridesPayload(t *testing.T) {
	resp := loadSearchFixture(t)

	options := normalize(resp, "MYR")
	require.NotEmpty(t, options)

	for _, opt := range options {
		assert.Equal(t, "MYR", opt.Currency)
	}
}

func TestNormalizeNilAndEmptyInput(t *testing.T) {
	assert.Empty(t, normalize(nil, "MYR"))
	assert.NotNil(t, normalize(nil, "MYR"))

	empty := normalize(&searchResponse{}, "MYR")
	assert.Empty(t, empty)
	assert.NotNil(t, empty)
}

func TestNormalizeItineraryWithoutLegs(t *testing.T) {
	price := 99.0
	resp := &searchResponse{
		Data: searchData{
			Itineraries: []rawItinerary{
				{Price: &rawPrice{Raw: &price}},
			},
		},
	}

	options := normalize(resp, "SGD")
	require.Len(t, options, 1)

	opt := options[0]
	assert.Equal(t, 99.0, opt.Price)
	assert.Equal(t, domain.UnknownAirline, opt.Outbound.Airline)
	assert.Equal(t, domain.UnknownAirline, opt.Inbound.Airline)
	assert.Equal(t, 0, opt.Outbound.StopCount)
	assert.Equal(t, "", opt.DepartureDate)
	assert.Equal(t, "", opt.ReturnDate)
}

func TestAirlineOf(t *testing.T) {
	tests := []struct {
		name string
		leg  rawLeg
		want string
	}{
		{
			name: "first marketing carrier wins",
			leg: rawLeg{Carriers: &rawCarriers{Marketing: []rawCarrier{
				{Name: "Malaysia Airlines"},
				{Name: "Qatar Airways"},
			}}},
			want: "Malaysia Airlines",
		},
		{
			name: "nil carriers",
			leg:  rawLeg{},
			want: domain.UnknownAirline,
		},
		{
			name: "empty marketing list",
			leg:  rawLeg{Carriers: &rawCarriers{}},
			want: domain.UnknownAirline,
		},
		{
			name: "blank carrier name",
			leg:  rawLeg{Carriers: &rawCarriers{Marketing: []rawCarrier{{Name: ""}}}},
			want: domain.UnknownAirline,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, airlineOf(&tt.leg))
		})
	}
}

func TestStopCountOf(t *testing.T) {
	two := 2
	withCount := rawLeg{
		StopCount: &two,
		Segments:  []json.RawMessage{json.RawMessage(`{}`)},
	}
	assert.Equal(t, 2, stopCountOf(&withCount), "explicit stopCount wins over segment count")

	withoutCount := rawLeg{
		Segments: []json.RawMessage{json.RawMessage(`{}`), json.RawMessage(`{}`), json.RawMessage(`{}`)},
	}
	assert.Equal(t, 3, stopCountOf(&withoutCount))

	assert.Equal(t, 0, stopCountOf(&rawLeg{}))
}

func TestDepartureDateOf(t *testing.T) {
	tests := []struct {
		name      string
		departure string
		want      string
	}{
		{"local datetime", "2024-12-14T08:55:00", "2024-12-14"},
		{"zoned datetime", "2024-12-14T08:55:00+08:00", "2024-12-14"},
		{"empty", "", ""},
		{"garbage", "tomorrow-ish", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leg := rawLeg{Departure: tt.departure}
			assert.Equal(t, tt.want, departureDateOf(&leg))
		})
	}

	assert.Equal(t, "", departureDateOf(nil))
}
