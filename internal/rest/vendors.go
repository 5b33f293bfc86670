package rest

import (
	"context"
	"net/http"

	"transitionRadar/domain"
	"transitionRadar/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	VendorHandler struct {
		validate *validator.Validate
		service  VendorService
	}

	VendorService interface {
		ResolveVendor(ctx context.Context, uei, cage, duns, name string) (domain.VendorMatch, error)
		AddVendor(ctx context.Context, rec domain.VendorRecord) error
		RemoveVendor(ctx context.Context, uei string) (bool, error)
	}

	ResolveRequest struct {
		UEI  string `json:"uei"`
		CAGE string `json:"cage"`
		DUNS string `json:"duns"`
		Name string `json:"name"`
	}

	AddVendorRequest struct {
		UEI  string `json:"uei"`
		CAGE string `json:"cage"`
		DUNS string `json:"duns"`
		Name string `json:"name" validate:"required"`
	}
)

func NewVendorHandler(service VendorService) *VendorHandler {
	return &VendorHandler{
		validate: validator.New(),
		service:  service,
	}
}

func (h *VendorHandler) Resolve(c echo.Context) error {
	metrics.ResolveRequests.Inc()

	var req ResolveRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if req.UEI == "" && req.CAGE == "" && req.DUNS == "" && req.Name == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "at least one of uei, cage, duns, name is required"})
	}

	match, err := h.service.ResolveVendor(c.Request().Context(), req.UEI, req.CAGE, req.DUNS, req.Name)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(match))
}

func (h *VendorHandler) Add(c echo.Context) error {
	var req AddVendorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	rec := domain.VendorRecord{
		UEI:  req.UEI,
		CAGE: req.CAGE,
		DUNS: req.DUNS,
		Name: req.Name,
	}
	if err := h.service.AddVendor(c.Request().Context(), rec); err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(rec))
}

func (h *VendorHandler) Remove(c echo.Context) error {
	uei := c.Param("uei")
	if uei == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "uei is required"})
	}

	removed, err := h.service.RemoveVendor(c.Request().Context(), uei)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}
	if !removed {
		return c.JSON(http.StatusNotFound, ResponseError{Message: "vendor not found"})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("Vendor removed"))
}
