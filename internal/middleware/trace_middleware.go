package middleware

import (
	"transitionRadar/business/detect"

	"github.com/labstack/echo/v4"
)

// TraceMiddleware copies the request id assigned by echo's RequestID
// middleware into the request context so detection logs carry it.
func TraceMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rid := c.Request().Header.Get(echo.HeaderXRequestID)
			if rid == "" {
				rid = c.Response().Header().Get(echo.HeaderXRequestID)
			}
			if rid != "" {
				ctx := detect.WithTraceID(c.Request().Context(), rid)
				c.SetRequest(c.Request().WithContext(ctx))
			}
			return next(c)
		}
	}
}
