package rest

import (
	"context"
	"net/http"
	"time"

	"transitionRadar/domain"
	"transitionRadar/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type ResponseError struct {
	Message string `json:"message"`
}

type (
	TransitionHandler struct {
		validate *validator.Validate
		service  DetectionService
	}

	DetectionService interface {
		DetectAward(ctx context.Context, awardID string) ([]domain.Transition, error)
		DetectAll(ctx context.Context, limit int, minConfidence domain.Confidence) ([]domain.Transition, error)
		Metrics() domain.DetectionMetricsSnapshot
		ResetMetrics()
	}

	DetectQuery struct {
		AwardID string `query:"award_id" validate:"required"`
	}

	BatchRequest struct {
		Limit         int    `json:"limit"`
		MinConfidence string `json:"min_confidence" validate:"omitempty,oneof=HIGH LIKELY POSSIBLE"`
	}
)

func NewTransitionHandler(service DetectionService) *TransitionHandler {
	return &TransitionHandler{
		validate: validator.New(),
		service:  service,
	}
}

func (h *TransitionHandler) GetByAward(c echo.Context) error {
	started := time.Now()
	defer func() { metrics.DetectLatency.Observe(time.Since(started).Seconds()) }()
	metrics.DetectRequests.Inc()

	var q DetectQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	transitions, err := h.service.DetectAward(c.Request().Context(), q.AwardID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(transitions))
}

func (h *TransitionHandler) DetectBatch(c echo.Context) error {
	started := time.Now()
	defer func() { metrics.DetectLatency.Observe(time.Since(started).Seconds()) }()
	metrics.DetectRequests.Inc()

	var req BatchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	transitions, err := h.service.DetectAll(c.Request().Context(), req.Limit, domain.Confidence(req.MinConfidence))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(transitions))
}

func (h *TransitionHandler) GetMetrics(c echo.Context) error {
	return c.JSON(http.StatusOK, fres.Response.StatusOK(h.service.Metrics()))
}

func (h *TransitionHandler) ResetMetrics(c echo.Context) error {
	h.service.ResetMetrics()
	return c.JSON(http.StatusOK, fres.Response.StatusOK("Detection metrics reset"))
}
