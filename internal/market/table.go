// Package market holds the static country/market configuration table.
// The table is loaded once at startup from a JSON file, is immutable
// afterwards, and is injected into the components that need it.
package market

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/skytrip/flight-search-api/internal/domain"
)

// tableFile is the on-disk shape of the countries configuration file.
type tableFile struct {
	Data []domain.CountryConfig `json:"data"`
}

// Table is an immutable, read-only country/market lookup table.
type Table struct {
	countries []domain.CountryConfig
}

// NewTable creates a table from the given entries.
func NewTable(countries []domain.CountryConfig) *Table {
	return &Table{countries: countries}
}

// Load reads the table from a JSON file of the form {"data": [...]}.
func Load(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read countries config: %w", err)
	}

	var file tableFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse countries config: %w", err)
	}

	return NewTable(file.Data), nil
}

// Lookup finds a country configuration by market code or country name.
// Matching is case-insensitive and ignores surrounding whitespace.
func (t *Table) Lookup(identifier string) (domain.CountryConfig, bool) {
	needle := strings.ToLower(strings.TrimSpace(identifier))
	if needle == "" {
		return domain.CountryConfig{}, false
	}

	for _, cfg := range t.countries {
		if strings.ToLower(cfg.Market) == needle || strings.ToLower(cfg.Country) == needle {
			return cfg, true
		}
	}
	return domain.CountryConfig{}, false
}

// All returns a copy of every entry in the table.
func (t *Table) All() []domain.CountryConfig {
	out := make([]domain.CountryConfig, len(t.countries))
	copy(out, t.countries)
	return out
}

// Len returns the number of entries in the table.
func (t *Table) Len() int {
	return len(t.countries)
}
