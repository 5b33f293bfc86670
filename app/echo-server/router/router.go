package router

import (
	"transitionRadar/internal/middleware"
	"transitionRadar/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupTransitionRoutes(api *echo.Group, handler *rest.TransitionHandler) {
	transitions := api.Group("/transitions")

	transitions.GET("", handler.GetByAward)
	transitions.POST("/batch", handler.DetectBatch)

	api.GET("/detection/metrics", handler.GetMetrics)
}

func SetupAuthRoutes(api *echo.Group, handler *rest.AuthHandler) {
	auth := api.Group("/auth")
	auth.POST("/token", handler.IssueToken)
}

func SetupVendorRoutes(api *echo.Group, handler *rest.VendorHandler) {
	vendors := api.Group("/vendors")
	vendors.POST("/resolve", handler.Resolve)
}

func SetupAdminRoutes(api *echo.Group, vendorHandler *rest.VendorHandler, transitionHandler *rest.TransitionHandler) {
	admin := api.Group("/admin", middleware.AuthMiddleware())

	admin.POST("/vendors", vendorHandler.Add)
	admin.DELETE("/vendors/:uei", vendorHandler.Remove)
	admin.POST("/detection/metrics/reset", transitionHandler.ResetMetrics)
}
