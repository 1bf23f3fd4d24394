package market

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skytrip/flight-search-api/internal/domain"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "countries-config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfigFile(t, `{
		"data": [
			{
				"country": "Malaysia",
				"market": "MY",
				"locale": "en-MY",
				"currencyTitle": "Malaysian Ringgit",
				"currency": "MYR",
				"currencySymbol": "RM",
				"site": "my"
			},
			{
				"country": "Singapore",
				"market": "SG",
				"locale": "en-SG",
				"currencyTitle": "Singapore Dollar",
				"currency": "SGD",
				"currencySymbol": "S$",
				"site": "sg"
			}
		]
	}`)

	table, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())

	cfg, ok := table.Lookup("SG")
	require.True(t, ok)
	assert.Equal(t, "Singapore", cfg.Country)
	assert.Equal(t, "SGD", cfg.Currency)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadMalformedJSON(t *testing.T) {
	path := writeConfigFile(t, `{"data": [`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLookup(t *testing.T) {
	table := NewTable([]domain.CountryConfig{
		{Country: "Malaysia", Market: "MY", Currency: "MYR"},
		{Country: "United Kingdom", Market: "UK", Currency: "GBP"},
	})

	tests := []struct {
		name       string
		identifier string
		wantFound  bool
		wantMarket string
	}{
		{"market code", "MY", true, "MY"},
		{"lowercase market code", "my", true, "MY"},
		{"country name", "Malaysia", true, "MY"},
		{"country name case-insensitive", "uNiTeD kInGdOm", true, "UK"},
		{"surrounding whitespace", "  UK  ", true, "UK"},
		{"unknown identifier", "FR", false, ""},
		{"empty identifier", "", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, ok := table.Lookup(tt.identifier)
			assert.Equal(t, tt.wantFound, ok)
			if tt.wantFound {
				assert.Equal(t, tt.wantMarket, cfg.Market)
			}
		})
	}
}

func TestAllReturnsCopy(t *testing.T) {
	table := NewTable([]domain.CountryConfig{
		{Country: "Malaysia", Market: "MY"},
	})

	all := table.All()
	all[0].Market = "XX"

	cfg, ok := table.Lookup("MY")
	require.True(t, ok)
	assert.Equal(t, "MY", cfg.Market)
}
