package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"transitionRadar/app/echo-server/router"
	"transitionRadar/business/detect"
	"transitionRadar/business/vendor"
	"transitionRadar/internal/middleware"
	"transitionRadar/internal/repository/memory"
	"transitionRadar/internal/rest"
	"transitionRadar/pkg/config"
	"transitionRadar/pkg/logger"
	"transitionRadar/pkg/metrics"
	"transitionRadar/pkg/utils"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting Transition Radar", "version", cfg.App.Version)

	utils.InitJWT(cfg.JWT.SecretKey)
	metrics.Init()

	// Detection config: built-in defaults plus env overrides
	detectCfg := buildDetectionConfig(cfg)

	// Init repos
	awardRepo := memory.NewAwardRepository()
	contractRepo := memory.NewContractRepository()
	signalRepo := memory.NewSignalDataRepository()

	if cfg.Data.AwardsFile != "" {
		n, err := awardRepo.LoadFile(cfg.Data.AwardsFile)
		if err != nil {
			logger.Fatal("Failed to load awards", "error", err)
		}
		logger.Info("Awards loaded", "count", n)
	}
	if cfg.Data.ContractsFile != "" {
		total, unrecognized, err := contractRepo.LoadFile(cfg.Data.ContractsFile)
		if err != nil {
			logger.Fatal("Failed to load contracts", "error", err)
		}
		logger.Info("Contracts loaded", "count", total, "unrecognized_competition_types", unrecognized)
	}

	// Build the vendor index from award recipients, then freeze it behind
	// the detection service
	awards, err := awardRepo.List(context.Background(), 0)
	if err != nil {
		logger.Fatal("Failed to list awards", "error", err)
	}
	index := vendor.IndexFromAwards(
		awards,
		detectCfg.VendorMatching.FuzzyThreshold,
		detectCfg.VendorMatching.FuzzySecondaryThreshold,
	)
	logger.Info("Vendor index built", "names", index.Len())

	detector, err := detect.NewDetector(detectCfg, vendor.NewResolver(index))
	if err != nil {
		logger.Fatal("Failed to build detector", "error", err)
	}

	// Init service + handlers
	service := detect.NewDetectionService(awardRepo, contractRepo, signalRepo, detector)
	transitionHandler := rest.NewTransitionHandler(service)
	vendorHandler := rest.NewVendorHandler(service)
	authHandler := rest.NewAuthHandler(cfg.JWT.OperatorKey)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = middleware.ErrorHandler

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.TraceMiddleware())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupTransitionRoutes(api, transitionHandler)
	router.SetupAuthRoutes(api, authHandler)
	router.SetupVendorRoutes(api, vendorHandler)
	router.SetupAdminRoutes(api, vendorHandler, transitionHandler)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}

// buildDetectionConfig layers env overrides over the built-in defaults.
func buildDetectionConfig(cfg *config.Config) detect.Config {
	dc := detect.DefaultConfig()

	dc.VendorMatching.RequireMatch = cfg.Detection.RequireVendorMatch
	if cfg.Detection.FuzzyThreshold > 0 {
		dc.VendorMatching.FuzzyThreshold = cfg.Detection.FuzzyThreshold
	}
	if cfg.Detection.FuzzySecondaryThreshold > 0 {
		dc.VendorMatching.FuzzySecondaryThreshold = cfg.Detection.FuzzySecondaryThreshold
	}
	if cfg.Detection.HighThreshold > 0 {
		dc.Confidence.High = cfg.Detection.HighThreshold
	}
	if cfg.Detection.LikelyThreshold > 0 {
		dc.Confidence.Likely = cfg.Detection.LikelyThreshold
	}
	if cfg.Detection.MaxDaysAfter > 0 {
		dc.MaxDaysAfter = cfg.Detection.MaxDaysAfter
	}

	return dc
}
