package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
)

// APIKeyHeader is the HTTP header carrying the client API key.
const APIKeyHeader = "X-API-Key"

// APIKeyGuard returns middleware that rejects requests without a matching
// API key. An empty expected key disables the guard, leaving the endpoints
// open; this is the development default.
func APIKeyGuard(expected string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if expected == "" {
				return next(c)
			}

			got := c.Request().Header.Get(APIKeyHeader)
			if subtle.ConstantTimeCompare([]byte(got), []byte(expected)) != 1 {
				return c.JSON(http.StatusUnauthorized, map[string]interface{}{
					"code":    "unauthorized",
					"message": "A valid API key is required",
				})
			}

			return next(c)
		}
	}
}
