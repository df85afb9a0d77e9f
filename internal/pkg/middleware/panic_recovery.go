package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/sgcab/dispatch/internal/pkg/logger"
)

// PanicRecoveryMiddleware creates a middleware that recovers from panics,
// logs them with a stack trace and returns a 500 response. No request may
// take the process down.
func PanicRecoveryMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("panic recovered", logrus.Fields{
						"panic":  fmt.Sprintf("%v", r),
						"method": c.Request().Method,
						"path":   c.Request().URL.Path,
						"ip":     c.RealIP(),
						"stack":  string(debug.Stack()),
					})

					_ = c.JSON(http.StatusInternalServerError, map[string]interface{}{
						"success": false,
						"error":   "Internal server error",
					})
				}
			}()

			return next(c)
		}
	}
}
