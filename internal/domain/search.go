package domain

import (
	"fmt"
	"regexp"
	"time"
)

// DateLayout is the calendar date format used throughout the API (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// CabinClass is the travel class requested for a search.
type CabinClass string

// Supported cabin classes, matching the upstream provider's vocabulary.
const (
	CabinEconomy        CabinClass = "economy"
	CabinPremiumEconomy CabinClass = "premium_economy"
	CabinBusiness       CabinClass = "business"
	CabinFirst          CabinClass = "first"
)

// IsValid checks if the cabin class is a supported value.
func (c CabinClass) IsValid() bool {
	switch c {
	case CabinEconomy, CabinPremiumEconomy, CabinBusiness, CabinFirst:
		return true
	default:
		return false
	}
}

// SearchRequest defines the parameters for a round-trip flight search.
// Origin and destination are free-text place names that are resolved to
// location identifiers before any search is issued.
type SearchRequest struct {
	// OriginQuery is the free-text departure place name (e.g., "Kuala Lumpur")
	OriginQuery string `json:"originQuery"`

	// DestinationQuery is the free-text arrival place name (e.g., "London")
	DestinationQuery string `json:"destinationQuery"`

	// DepartDate is the start of the search window in YYYY-MM-DD format
	DepartDate string `json:"departDate"`

	// ReturnDate is the end of the search window in YYYY-MM-DD format
	ReturnDate string `json:"returnDate"`

	// Adults is the number of adult passengers (minimum 1)
	Adults int `json:"adults"`

	// Children is the number of child passengers
	Children int `json:"children"`

	// Infants is the number of infant passengers
	Infants int `json:"infants"`

	// CabinClass is the requested travel class (default: economy)
	CabinClass CabinClass `json:"cabinClass"`

	// Currency is the ISO 4217 currency code carried onto every result
	Currency string `json:"currency"`

	// Market is the region code influencing upstream pricing (e.g., "MY")
	Market string `json:"market"`
}

// dateRegex matches dates in YYYY-MM-DD format.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Validate checks if the search request is structurally valid.
// Returns a wrapped ErrInvalidRequest error if validation fails.
// The "depart date is from today onward" rule belongs to the HTTP layer,
// which knows the caller's notion of today; it is not re-checked here.
func (r *SearchRequest) Validate() error {
	if r.OriginQuery == "" {
		return fmt.Errorf("%w: originQuery is required", ErrInvalidRequest)
	}
	if r.DestinationQuery == "" {
		return fmt.Errorf("%w: destinationQuery is required", ErrInvalidRequest)
	}

	if r.DepartDate == "" {
		return fmt.Errorf("%w: departDate is required", ErrInvalidRequest)
	}
	if !dateRegex.MatchString(r.DepartDate) {
		return fmt.Errorf("%w: departDate must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, r.DepartDate)
	}
	depart, err := time.Parse(DateLayout, r.DepartDate)
	if err != nil {
		return fmt.Errorf("%w: departDate is not a valid date: %s", ErrInvalidRequest, r.DepartDate)
	}

	if r.ReturnDate == "" {
		return fmt.Errorf("%w: returnDate is required", ErrInvalidRequest)
	}
	if !dateRegex.MatchString(r.ReturnDate) {
		return fmt.Errorf("%w: returnDate must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, r.ReturnDate)
	}
	ret, err := time.Parse(DateLayout, r.ReturnDate)
	if err != nil {
		return fmt.Errorf("%w: returnDate is not a valid date: %s", ErrInvalidRequest, r.ReturnDate)
	}

	if ret.Before(depart) {
		return fmt.Errorf("%w: returnDate must be on or after departDate", ErrInvalidRequest)
	}

	if r.Adults < 1 {
		return fmt.Errorf("%w: adults must be at least 1", ErrInvalidRequest)
	}
	if r.Children < 0 {
		return fmt.Errorf("%w: children must be non-negative", ErrInvalidRequest)
	}
	if r.Infants < 0 {
		return fmt.Errorf("%w: infants must be non-negative", ErrInvalidRequest)
	}

	if r.CabinClass != "" && !r.CabinClass.IsValid() {
		return fmt.Errorf("%w: cabinClass must be one of: economy, premium_economy, business, first; got %q", ErrInvalidRequest, r.CabinClass)
	}

	return nil
}

// SetDefaults applies default values to empty optional fields.
// The defaults mirror the public API contract: one adult in economy,
// priced in MYR for the MY market.
func (r *SearchRequest) SetDefaults() {
	if r.Adults == 0 {
		r.Adults = 1
	}
	if r.CabinClass == "" {
		r.CabinClass = CabinEconomy
	}
	if r.Currency == "" {
		r.Currency = "MYR"
	}
	if r.Market == "" {
		r.Market = "MY"
	}
}

// DatePair is one candidate (depart, return) combination produced by
// enumerating the request's date window. Depart is strictly before Return.
type DatePair struct {
	// Depart is the candidate departure date in YYYY-MM-DD format
	Depart string `json:"depart"`

	// Return is the candidate return date in YYYY-MM-DD format
	Return string `json:"return"`
}
