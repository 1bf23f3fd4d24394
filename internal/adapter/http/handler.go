package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/skytrip/flight-search-api/internal/adapter/http/response"
	"github.com/skytrip/flight-search-api/internal/domain"
	"github.com/skytrip/flight-search-api/internal/infrastructure/timeutil"
	"github.com/skytrip/flight-search-api/internal/usecase"
)

// FlightHandler handles HTTP requests for flight-related endpoints.
type FlightHandler struct {
	useCase usecase.FlightSearchUseCase
	clock   timeutil.Clock
}

// NewFlightHandler creates a new FlightHandler with the given use case.
// A nil clock falls back to the system clock.
func NewFlightHandler(uc usecase.FlightSearchUseCase, clock timeutil.Clock) *FlightHandler {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &FlightHandler{
		useCase: uc,
		clock:   clock,
	}
}

// SearchFlights handles POST /api/v1/flights/search
//
// @Summary Search round-trip flights over a date window
// @Description Resolves free-text origin and destination, searches every departure/return date combination in the window, and returns the options grouped into all, weekday, and weekend views sorted by price
// @Tags flights
// @Accept json
// @Produce json
// @Param request body SearchFlightsRequest true "Search criteria"
// @Success 200 {object} SearchResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 401 {object} response.ErrorDetail "Missing or invalid API key"
// @Failure 502 {object} response.ErrorDetail "Upstream provider failure"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/flights/search [post]
func (h *FlightHandler) SearchFlights(c echo.Context) error {
	var req SearchFlightsRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(h.clock.Now()); err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.useCase.Search(c.Request().Context(), ToDomainRequest(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.SearchResults(c, ToSearchResponseDTO(result))
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *FlightHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *FlightHandler) handleError(c echo.Context, err error) error {
	// Client-input failures: unknown place or an unusable date window
	if errors.Is(err, domain.ErrLocationNotFound) || errors.Is(err, domain.ErrInvalidRequest) {
		return response.BadRequest(c, err.Error())
	}

	// Check for context deadline exceeded (timeout)
	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}

	// Check for context cancelled
	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	// Provider failures surface as a gateway error with the details logged,
	// not echoed to the client
	if errors.Is(err, domain.ErrUpstreamFailure) {
		log.Error().Err(err).Msg("Upstream provider failure")
		return response.UpstreamFailure(c)
	}

	log.Error().Err(err).Msg("Unhandled search error")
	return response.InternalServerError(c)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *FlightHandler) Health(c echo.Context) error {
	return response.Health(c)
}

// LocationHandler handles HTTP requests for location endpoints.
type LocationHandler struct {
	useCase usecase.LocationUseCase
}

// NewLocationHandler creates a new LocationHandler with the given use case.
func NewLocationHandler(uc usecase.LocationUseCase) *LocationHandler {
	return &LocationHandler{useCase: uc}
}

// Detect handles GET /api/v1/locations/detect
//
// @Summary Detect the caller's country and market
// @Description Geolocates the caller's IP address and returns the matching country market configuration when one exists
// @Tags locations
// @Produce json
// @Success 200 {object} LocationDetailsDTO
// @Router /api/v1/locations/detect [get]
func (h *LocationHandler) Detect(c echo.Context) error {
	details := h.useCase.Detect(c.Request().Context(), c.RealIP())
	return response.OK(c, ToLocationDetailsDTO(details))
}

// Countries handles GET /api/v1/locations/countries
//
// @Summary List supported country markets
// @Description Returns every configured country with its market, locale, and currency settings
// @Tags locations
// @Produce json
// @Success 200 {array} domain.CountryConfig
// @Router /api/v1/locations/countries [get]
func (h *LocationHandler) Countries(c echo.Context) error {
	return response.OK(c, h.useCase.Countries())
}
