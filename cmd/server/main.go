// Package main is the entry point for the flight search service.
//
//	@title						Flight Search API
//	@version					1.0.0
//	@description				A round-trip flight search service that fans one upstream search out per date combination in a window and groups the results into weekday and weekend views.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/skytrip/flight-search-api/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/skytrip/flight-search-api/docs"

	// Application layers
	"github.com/skytrip/flight-search-api/internal/adapter/geoip"
	flighthttp "github.com/skytrip/flight-search-api/internal/adapter/http"
	"github.com/skytrip/flight-search-api/internal/adapter/http/middleware"
	"github.com/skytrip/flight-search-api/internal/adapter/provider/skyscanner"
	"github.com/skytrip/flight-search-api/internal/config"
	"github.com/skytrip/flight-search-api/internal/infrastructure/logger"
	"github.com/skytrip/flight-search-api/internal/infrastructure/ratelimit"
	"github.com/skytrip/flight-search-api/internal/infrastructure/timeutil"
	"github.com/skytrip/flight-search-api/internal/market"
	"github.com/skytrip/flight-search-api/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	setupLogger(cfg)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware
	middleware.Setup(e, log.Logger)

	// Setup routes
	setupRoutes(e, cfg)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e)
}

// setupLogger installs the configured logger as the global zerolog logger.
func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	l := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "flight-search-api",
	})
	log.Logger = l.Logger
}

// setupRoutes wires the adapters and use cases and registers the HTTP routes.
func setupRoutes(e *echo.Echo, cfg *config.Config) {
	// Upstream provider client with a shared per-endpoint rate limiter
	limiter := ratelimit.NewKeyedLimiter(ratelimit.Config{
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		Burst:             cfg.RateLimit.Burst,
	})
	provider := skyscanner.NewClient(skyscanner.Config{
		Host:    cfg.Provider.Host,
		APIKey:  cfg.Provider.APIKey,
		BaseURL: cfg.Provider.BaseURL,
		Timeout: cfg.Provider.Timeout,
	}, limiter)

	// Country market table; the locations feature degrades to an empty table
	// when the file is missing rather than blocking startup
	table, err := market.Load(cfg.Countries.Path)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.Countries.Path).Msg("Country market table unavailable")
		table = market.NewTable(nil)
	}

	geoClient := geoip.NewClient(geoip.Config{
		BaseURL: cfg.GeoIP.BaseURL,
		Timeout: cfg.GeoIP.Timeout,
	})

	// Use cases
	searchUseCase := usecase.NewFlightSearchUseCase(provider, provider, &usecase.Config{
		GlobalTimeout: cfg.Search.GlobalTimeout,
		MaxConcurrent: cfg.Search.MaxConcurrent,
		MaxWindowDays: cfg.Search.MaxWindowDays,
	})
	locationUseCase := usecase.NewLocationUseCase(geoClient, table)

	// Handlers
	flightHandler := flighthttp.NewFlightHandler(searchUseCase, timeutil.NewRealClock())
	locationHandler := flighthttp.NewLocationHandler(locationUseCase)

	var guard echo.MiddlewareFunc
	if cfg.Auth.APIKey != "" {
		guard = middleware.APIKeyGuard(cfg.Auth.APIKey)
	}
	flighthttp.RegisterRoutes(e, flightHandler, locationHandler, guard)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
