package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// SecureCORS returns CORS middleware for the given comma-separated
// origin list. Wildcard origins are stripped in production; an empty
// list falls back to localhost for development.
func SecureCORS(allowedOrigins, env string) echo.MiddlewareFunc {
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:3000"
	}

	origins := strings.Split(allowedOrigins, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	if env == "production" {
		filteredOrigins := make([]string, 0, len(origins))
		for _, origin := range origins {
			if origin != "*" {
				filteredOrigins = append(filteredOrigins, origin)
			}
		}
		origins = filteredOrigins
		if len(origins) == 0 {
			origins = []string{"http://localhost:3000"}
		}
	}

	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: origins,
		AllowMethods: []string{echo.GET, echo.POST, echo.PATCH, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		MaxAge:       300,
	})
}
