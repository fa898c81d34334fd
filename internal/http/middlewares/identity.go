package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"task-tracker.com/task-tracker/internal/auth"
)

const actorIDKey = "actorUserID"

// Identity resolves the acting user from a bearer token. A missing header is
// not an error: the request proceeds with an anonymous actor, which the core
// treats as a valid identity. A present but invalid token is rejected.
func Identity(jwtManager *auth.JWTManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return next(c)
			}

			if !strings.HasPrefix(header, "Bearer ") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format, use: Bearer <token>")
			}

			token := strings.TrimPrefix(header, "Bearer ")
			claims, err := jwtManager.ValidateToken(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set(actorIDKey, claims.UserID)
			return next(c)
		}
	}
}

// ActorID returns the acting user id resolved for this request, or the empty
// string for an anonymous actor.
func ActorID(c echo.Context) string {
	if id, ok := c.Get(actorIDKey).(string); ok {
		return id
	}
	return ""
}
