// File: slotify/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"slotify/config"
	"slotify/cron"
	"slotify/database"
	bookingRepoPkg "slotify/database/repository/booking"
	catalogRepoPkg "slotify/database/repository/catalog"
	deviceRepoPkg "slotify/database/repository/device"
	scheduleRepoPkg "slotify/database/repository/schedule"
	"slotify/handlers"
	"slotify/metrics"
	"slotify/middleware"
	"slotify/routes"
	"slotify/services/availability"
	"slotify/services/booking"
	"slotify/services/catalog"
	"slotify/services/notification"
	"slotify/services/schedule"
	"slotify/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(middleware.MetricsMiddleware())

	// repositories.
	catalogRepo := catalogRepoPkg.NewMongoServiceCatalogRepo()
	scheduleRepo := scheduleRepoPkg.NewMongoScheduleRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	deviceRepo := deviceRepoPkg.NewMongoDeviceRepo()

	// Asynq client for the notification pipeline.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer asynqClient.Close()

	// services.
	notificationService := &notification.DefaultNotificationService{
		AsynqClient: asynqClient,
	}

	availabilityEngine := &availability.DefaultAvailabilityEngine{
		CatalogRepo:  catalogRepo,
		ScheduleRepo: scheduleRepo,
		BookingRepo:  bookingRepo,
		Clock:        utils.NewClock(),
		Cache:        utils.GetCacheClient(),
		Metrics:      metrics.Default,
	}

	bookingService := &booking.DefaultBookingService{
		BookingRepo: bookingRepo,
		CatalogRepo: catalogRepo,
		Engine:      availabilityEngine,
		Notifier:    notificationService,
		Clock:       utils.NewClock(),
		Metrics:     metrics.Default,
	}

	catalogService := &catalog.DefaultCatalogService{
		Repo: catalogRepo,
	}

	scheduleService := &schedule.DefaultScheduleService{
		Repo:        scheduleRepo,
		CatalogRepo: catalogRepo,
		Cache:       utils.GetCacheClient(),
	}

	// handlers.
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityEngine)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	deviceHandler := handlers.NewDeviceHandler(deviceRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Service catalog endpoints.
		CreateServiceHandler:    catalogHandler.CreateServiceHandler,
		GetServiceHandler:       catalogHandler.GetServiceHandler,
		ListMyServicesHandler:   catalogHandler.ListMyServicesHandler,
		UpdateServiceHandler:    catalogHandler.UpdateServiceHandler,
		SetServiceActiveHandler: catalogHandler.SetServiceActiveHandler,

		// Schedule endpoints.
		GetScheduleHandler:    scheduleHandler.GetScheduleHandler,
		SetWeeklyHoursHandler: scheduleHandler.SetWeeklyHoursHandler,
		AddOverrideHandler:    scheduleHandler.AddOverrideHandler,
		RemoveOverrideHandler: scheduleHandler.RemoveOverrideHandler,

		// Availability endpoints.
		GetDaySlotsHandler: availabilityHandler.GetDaySlotsHandler,
		CheckSlotHandler:   availabilityHandler.CheckSlotHandler,

		// Booking endpoints.
		CreateBookingHandler:        bookingHandler.CreateBookingHandler,
		GetBookingHandler:           bookingHandler.GetBookingHandler,
		ListMyBookingsHandler:       bookingHandler.ListMyBookingsHandler,
		ListProviderBookingsHandler: bookingHandler.ListProviderBookingsHandler,
		RescheduleBookingHandler:    bookingHandler.RescheduleBookingHandler,
		UpdateBookingNotesHandler:   bookingHandler.UpdateBookingNotesHandler,
		ConfirmBookingHandler:       bookingHandler.ConfirmBookingHandler,
		DeclineBookingHandler:       bookingHandler.DeclineBookingHandler,
		CancelBookingHandler:        bookingHandler.CancelBookingHandler,
		CompleteBookingHandler:      bookingHandler.CompleteBookingHandler,

		// Device endpoints.
		RegisterDeviceHandler: deviceHandler.RegisterDeviceHandler,
		RemoveDeviceHandler:   deviceHandler.RemoveDeviceHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background workers and monitors.
	notifyWorker := &cron.Worker{
		Devices:  deviceRepo,
		Bookings: bookingRepo,
	}
	notifyWorker.Start()
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
