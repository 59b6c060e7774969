// File: eccos/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eccos/config"
	"eccos/cron"
	"eccos/database"
	calendarRepoPkg "eccos/database/repository/calendar"
	messageRepoPkg "eccos/database/repository/message"
	requestRepoPkg "eccos/database/repository/request"
	staffRepoPkg "eccos/database/repository/staff"
	"eccos/handlers"
	"eccos/middleware"
	"eccos/routes"
	calendarSvc "eccos/services/calendar"
	"eccos/services/notification"
	requestSvc "eccos/services/request"
	"eccos/services/tasks"
	"eccos/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	if err := requestRepoPkg.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure database indexes: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	reqRepo := requestRepoPkg.NewMongoRequestRepo()
	lockMgr := requestRepoPkg.NewMongoLockManager()
	calRepo := calendarRepoPkg.NewMongoCalendarRepo()
	msgRepo := messageRepoPkg.NewMongoMessageRepo()
	stfRepo := staffRepoPkg.NewMongoStaffRepo()

	// services.
	calendarService := &calendarSvc.DefaultCalendarService{
		Repo:  calRepo,
		Cache: utils.GetCacheClient(),
	}

	notifier := &notification.FCMNotifier{
		Staff: stfRepo,
	}

	requestService := &requestSvc.DefaultRequestService{
		Repo:      reqRepo,
		Locks:     lockMgr,
		Messages:  msgRepo,
		Calendar:  calendarService,
		Notifier:  notifier,
		Reminders: tasks.NewAsynqReminderScheduler(),
	}

	// Background reminder worker.
	cron.InitReminderWorker(notifier)

	// handlers.
	requestHandler := handlers.NewRequestHandler(requestService, logger)
	calendarHandler := handlers.NewCalendarHandler(calendarService, logger)
	deviceHandler := handlers.NewDeviceHandler(stfRepo, logger)
	adminHandler := handlers.NewAdminHandler(requestService, calendarService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		StaffRepo: stfRepo,

		// Request endpoints.
		CreatePurchaseHandler:    requestHandler.CreatePurchaseHandler,
		CreateSupportHandler:     requestHandler.CreateSupportHandler,
		CreateReservationHandler: requestHandler.CreateReservationHandler,
		ListMyRequestsHandler:    requestHandler.ListMyRequestsHandler,
		GetRequestByIDHandler:    requestHandler.GetRequestByIDHandler,
		CancelRequestHandler:     requestHandler.CancelRequestHandler,

		// Message thread endpoints.
		PostMessageHandler:  requestHandler.PostMessageHandler,
		ListMessagesHandler: requestHandler.ListMessagesHandler,

		// Availability endpoints.
		AvailabilityPreviewHandler: requestHandler.AvailabilityPreviewHandler,
		ListOpenDatesHandler:       calendarHandler.ListOpenDatesHandler,

		// Device endpoints.
		UpdateFCMTokenHandler: deviceHandler.UpdateFCMTokenHandler,

		// Admin endpoints.
		AdminHandler: adminHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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
