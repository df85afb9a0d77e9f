package middleware

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	jwtpkg "github.com/sgcab/dispatch/internal/pkg/jwt"
	"github.com/sgcab/dispatch/internal/pkg/models"
	"github.com/sgcab/dispatch/internal/utils"
)

const authContextKey = "auth_context"

// JWTAuthMiddleware creates a middleware for JWT authentication. On success
// the caller's actor id and role are stored on the echo context as an
// AuthContext.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			actorIDRaw, ok := (*claims)["actor_id"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing actor_id claim")
			}

			role, ok := (*claims)["role"].(string)
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing role claim")
			}

			actorID, err := uuid.Parse(fmt.Sprintf("%v", actorIDRaw))
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token: actor_id is not a valid UUID")
			}

			c.Set(authContextKey, models.AuthContext{ActorID: actorID, Role: role})

			return next(c)
		}
	}
}

// AuthFromContext returns the caller identity stored by JWTAuthMiddleware.
func AuthFromContext(c echo.Context) (models.AuthContext, bool) {
	auth, ok := c.Get(authContextKey).(models.AuthContext)
	return auth, ok
}

// SetAuthContext stores a caller identity on the echo context. Tests use
// this to bypass token parsing.
func SetAuthContext(c echo.Context, auth models.AuthContext) {
	c.Set(authContextKey, auth)
}
