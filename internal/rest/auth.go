package rest

import (
	"crypto/subtle"
	"net/http"
	"time"

	"transitionRadar/pkg/utils"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const operatorTokenTTL = 24 * time.Hour

type (
	AuthHandler struct {
		validate    *validator.Validate
		operatorKey string
	}

	TokenRequest struct {
		OperatorID string `json:"operator_id" validate:"required"`
		Key        string `json:"key" validate:"required"`
	}

	TokenResponse struct {
		Token     string    `json:"token"`
		ExpiresAt time.Time `json:"expires_at"`
	}
)

func NewAuthHandler(operatorKey string) *AuthHandler {
	return &AuthHandler{
		validate:    validator.New(),
		operatorKey: operatorKey,
	}
}

// IssueToken exchanges the shared operator key for a bearer token that
// unlocks the admin routes.
func (h *AuthHandler) IssueToken(c echo.Context) error {
	if h.operatorKey == "" {
		return c.JSON(http.StatusServiceUnavailable, ResponseError{Message: "operator key not configured"})
	}

	var req TokenRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if subtle.ConstantTimeCompare([]byte(req.Key), []byte(h.operatorKey)) != 1 {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "invalid operator key"})
	}

	token, err := utils.GenerateJWT(req.OperatorID, operatorTokenTTL)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(TokenResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(operatorTokenTTL),
	}))
}
