package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RateLimiter creates a rate limiter middleware for the rename endpoint.
// Renames are cheap but broadcast to every participant, so each IP gets a
// modest budget per minute.
func RateLimiter() echo.MiddlewareFunc {
	config := middleware.RateLimiterConfig{
		// An in-memory store is enough for a single-process relay.
		Store: middleware.NewRateLimiterMemoryStore(10),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.String(http.StatusTooManyRequests, "Too many rename requests. Please try again later.")
		},
	}
	return middleware.RateLimiterWithConfig(config)
}
