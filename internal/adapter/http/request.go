// Package http provides the HTTP handler layer for the flight search API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"regexp"
	"time"

	"github.com/skytrip/flight-search-api/internal/domain"
)

// SearchFlightsRequest represents the request body for a round-trip search.
type SearchFlightsRequest struct {
	// Origin is the free-text departure place (e.g., "Kuala Lumpur")
	Origin string `json:"origin"`

	// Destination is the free-text arrival place (e.g., "London")
	Destination string `json:"destination"`

	// DepartDate is the start of the search window in YYYY-MM-DD format
	DepartDate string `json:"departDate"`

	// ReturnDate is the end of the search window in YYYY-MM-DD format
	ReturnDate string `json:"returnDate"`

	// Adults is the number of adult passengers (optional, defaults to 1)
	Adults *int `json:"adults,omitempty"`

	// Children is the number of child passengers (optional, defaults to 0)
	Children *int `json:"children,omitempty"`

	// Infants is the number of infant passengers (optional, defaults to 0)
	Infants *int `json:"infants,omitempty"`

	// CabinClass is the travel class (optional, defaults to economy)
	CabinClass string `json:"cabinClass,omitempty"`

	// Currency is the pricing currency code (optional, defaults to MYR)
	Currency string `json:"currency,omitempty"`

	// Market is the provider market code (optional, defaults to MY)
	Market string `json:"market,omitempty"`
}

// Validation regex patterns.
var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates the search request against the given reference date.
// Both window dates must be today or later, where "today" is the calendar
// date of now.
func (r *SearchFlightsRequest) Validate(now time.Time) error {
	errs := &ValidationErrors{}

	r.validateOrigin(errs)
	r.validateDestination(errs)

	departOK := r.validateDate(errs, "departDate", r.DepartDate, now)
	returnOK := r.validateDate(errs, "returnDate", r.ReturnDate, now)
	if departOK && returnOK {
		r.validateWindowOrder(errs)
	}

	r.validatePassengers(errs)
	r.validateCabinClass(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *SearchFlightsRequest) validateOrigin(errs *ValidationErrors) {
	if r.Origin == "" {
		errs.Add("origin", "origin is required")
	}
}

func (r *SearchFlightsRequest) validateDestination(errs *ValidationErrors) {
	if r.Destination == "" {
		errs.Add("destination", "destination is required")
	}
}

// validateDate reports whether the field holds a well-formed, non-past date.
func (r *SearchFlightsRequest) validateDate(errs *ValidationErrors, field, value string, now time.Time) bool {
	if value == "" {
		errs.Add(field, field+" is required")
		return false
	}

	if !datePattern.MatchString(value) {
		errs.Add(field, field+" must be in YYYY-MM-DD format")
		return false
	}

	parsed, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		errs.Add(field, field+" is not a valid date")
		return false
	}

	today, _ := time.Parse(domain.DateLayout, now.Format(domain.DateLayout))
	if parsed.Before(today) {
		errs.Add(field, field+" must be today or later")
		return false
	}
	return true
}

// validateWindowOrder requires returnDate to be on or after departDate. The
// two dates have already been validated individually.
func (r *SearchFlightsRequest) validateWindowOrder(errs *ValidationErrors) {
	depart, _ := time.Parse(domain.DateLayout, r.DepartDate)
	ret, _ := time.Parse(domain.DateLayout, r.ReturnDate)

	if ret.Before(depart) {
		errs.Add("returnDate", "returnDate must be on or after departDate")
	}
}

func (r *SearchFlightsRequest) validatePassengers(errs *ValidationErrors) {
	if r.Adults != nil {
		if *r.Adults < 1 {
			errs.Add("adults", "adults must be at least 1")
		} else if *r.Adults > 9 {
			errs.Add("adults", "adults cannot exceed 9")
		}
	}

	if r.Children != nil && *r.Children < 0 {
		errs.Add("children", "children must be a non-negative number")
	}
	if r.Infants != nil && *r.Infants < 0 {
		errs.Add("infants", "infants must be a non-negative number")
	}
}

func (r *SearchFlightsRequest) validateCabinClass(errs *ValidationErrors) {
	if r.CabinClass == "" {
		return
	}
	if !domain.CabinClass(r.CabinClass).IsValid() {
		errs.Add("cabinClass", "cabinClass must be one of: economy, premium_economy, business, first")
	}
}
