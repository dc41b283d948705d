package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/payguard/payguard/internal/pkg/logger"
	"github.com/payguard/payguard/internal/utils"
)

// PanicRecoveryMiddleware creates a middleware that recovers from panics,
// logs the stack trace and returns a 500 response
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					stack := debug.Stack()

					zapLogger.Error("Panic recovered",
						logger.String("panic", fmt.Sprintf("%v", r)),
						logger.String("method", c.Request().Method),
						logger.String("path", c.Request().URL.Path),
						logger.String("client_ip", c.RealIP()),
						logger.String("stacktrace", string(stack)))

					_ = utils.InternalServerErrorResponse(c, "Internal server error")
				}
			}()

			return next(c)
		}
	}
}
