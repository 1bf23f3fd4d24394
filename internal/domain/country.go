package domain

// CountryConfig is one entry of the static country/market lookup table.
// The table is loaded once at startup and read-only thereafter.
type CountryConfig struct {
	// Country is the display name (e.g., "Malaysia")
	Country string `json:"country"`

	// Market is the 2-letter market code (e.g., "MY")
	Market string `json:"market"`

	// Locale is the BCP 47 locale tag (e.g., "en-MY")
	Locale string `json:"locale"`

	// CurrencyTitle is the display name of the currency (e.g., "Malaysian Ringgit")
	CurrencyTitle string `json:"currencyTitle"`

	// Currency is the ISO 4217 currency code (e.g., "MYR")
	Currency string `json:"currency"`

	// CurrencySymbol is the currency's display symbol (e.g., "RM")
	CurrencySymbol string `json:"currencySymbol"`

	// Site is the provider site identifier for this market
	Site string `json:"site"`
}

// LocationDetails is the result of resolving a caller's IP address to a
// country and its market configuration. CountryConfig is nil when the
// country is not present in the lookup table.
type LocationDetails struct {
	// CountryCode is the detected 2-letter country code; empty when
	// geolocation failed
	CountryCode string `json:"countryCode"`

	// CountryConfig is the matching market configuration, if any
	CountryConfig *CountryConfig `json:"countryConfig"`
}
