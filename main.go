// File: guidely/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"guidely/config"
	"guidely/cron"
	"guidely/database"
	availabilityRepo "guidely/database/repository/availability"
	bookingRepo "guidely/database/repository/booking"
	calendarRepo "guidely/database/repository/calendar"
	providerRepo "guidely/database/repository/provider"
	"guidely/handlers"
	"guidely/middleware"
	"guidely/routes"
	"guidely/services/availability"
	"guidely/services/booking"
	"guidely/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestLoggerMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	provRepo := providerRepo.NewMongoProviderRepo()
	bkRepo := bookingRepo.NewMongoBookingRepo()
	availRepo := availabilityRepo.NewMongoAvailabilityRepo()
	calRepo := calendarRepo.NewMongoCalendarRepo()

	for _, ensure := range []func() error{
		provRepo.EnsureIndexes,
		bkRepo.EnsureIndexes,
		availRepo.EnsureIndexes,
		calRepo.EnsureIndexes,
	} {
		if err := ensure(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure indexes: %v", err)
		}
	}

	// services.
	bookingService := &booking.DefaultBookingService{
		Repo:         bkRepo,
		CalendarRepo: calRepo,
		ProviderRepo: provRepo,
		Cache:        utils.GetCacheClient(),
		CacheTTL:     time.Duration(config.AppConfig.CalendarCacheTTLSeconds) * time.Second,
	}
	availabilityService := &availability.DefaultAvailabilityService{
		Repo: availRepo,
	}

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	providerHandler := handlers.NewProviderHandler(provRepo)
	adminHandler := handlers.NewAdminHandler(provRepo, cloudinaryStorageService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Booking endpoints.
		CreateBookingHandler:       bookingHandler.CreateBookingHandler,
		UpdateBookingStatusHandler: bookingHandler.UpdateBookingStatusHandler,
		GetBookingHandler:          bookingHandler.GetBookingHandler,
		ListBookingsHandler:        bookingHandler.ListBookingsHandler,
		GetProviderCalendarHandler: bookingHandler.GetProviderCalendarHandler,

		// Availability endpoints.
		GetAvailabilityHandler:      availabilityHandler.GetAvailabilityHandler,
		ReplaceAvailabilityHandler:  availabilityHandler.ReplaceAvailabilityHandler,
		BulkSetDaysHandler:          availabilityHandler.BulkSetDaysHandler,
		ApplyPatternHandler:         availabilityHandler.ApplyPatternHandler,
		AddUnavailablePeriodHandler: availabilityHandler.AddUnavailablePeriodHandler,
		ClearScheduleHandler:        availabilityHandler.ClearScheduleHandler,

		// Provider endpoints.
		RegisterProviderHandler: providerHandler.RegisterProviderHandler,
		GetProviderByIDHandler:  providerHandler.GetProviderByIDHandler,

		// Admin endpoints.
		AdminHandler: adminHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background calendar reconciler and health monitor.
	cron.InitReconcileWorker(bookingService, provRepo)
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
