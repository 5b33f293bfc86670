package middleware

import (
	"net/http"
	"strings"
	"time"

	"transitionRadar/pkg/logger"
	"transitionRadar/pkg/utils"

	jsonres "transitionRadar/pkg/response"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware validates the operator bearer token for admin routes.
func AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					"UNAUTHORIZED", "Missing authorization header", nil,
				))
			}

			tokenParts := strings.Split(authHeader, " ")
			if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					"UNAUTHORIZED", "Invalid authorization format", nil,
				))
			}

			claims, err := utils.ParseJWT(tokenParts[1])
			if err != nil {
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					"UNAUTHORIZED", "Invalid token", nil,
				))
			}

			expAt, err := claims.GetExpirationTime()
			if err != nil || expAt == nil {
				return c.JSON(http.StatusForbidden, jsonres.Error(
					"FORBIDDEN", "Status Forbidden", nil,
				))
			}
			if time.Now().After(expAt.Time) {
				return c.JSON(http.StatusForbidden, jsonres.Error(
					"FORBIDDEN", "Status Forbidden", nil,
				))
			}

			if claims.UserID == "" {
				logger.Error("Token missing operator id")
				return c.JSON(http.StatusForbidden, jsonres.Error(
					"FORBIDDEN", "Token missing operator id", nil,
				))
			}
			c.Set("operator_id", claims.UserID)

			return next(c)
		}
	}
}

// ErrorHandler is the echo-level fallback for unhandled errors.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal server error"
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if msg, ok := he.Message.(string); ok {
			message = msg
		}
	}

	logger.Error("Request failed", "path", c.Path(), "error", err)
	_ = c.JSON(code, jsonres.Error(http.StatusText(code), message, nil))
}
