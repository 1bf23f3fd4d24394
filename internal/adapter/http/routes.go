// Package http provides the HTTP handler layer for the flight search API.
package http

import (
	"github.com/labstack/echo/v4"

	"github.com/skytrip/flight-search-api/internal/infrastructure/metrics"
)

// RegisterRoutes registers all flight search API routes.
// It creates a versioned API group and attaches the handler methods. The
// guard middleware, when not nil, protects the search endpoint only; health,
// metrics, and location lookups stay open.
func RegisterRoutes(e *echo.Echo, fh *FlightHandler, lh *LocationHandler, guard echo.MiddlewareFunc) {
	// Operational endpoints (no version prefix)
	e.GET("/health", fh.Health)
	e.GET("/metrics", metrics.Handler())

	// API v1 group
	api := e.Group("/api/v1")

	// Flights group
	flights := api.Group("/flights")
	if guard != nil {
		flights.Use(guard)
	}
	flights.POST("/search", fh.SearchFlights)

	// Locations group
	locations := api.Group("/locations")
	locations.GET("/detect", lh.Detect)
	locations.GET("/countries", lh.Countries)
}
