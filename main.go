// File: remindly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"remindly/config"
	"remindly/cron"
	"remindly/database/store"
	"remindly/handlers"
	"remindly/middleware"
	"remindly/routes"
	noteSvc "remindly/services/note"
	"remindly/services/notification"
	reminderSvc "remindly/services/reminder"
	settingsSvc "remindly/services/settings"
	"remindly/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitStore()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	// Storage and scheduling.
	kvStore := store.NewStore(store.NewRedisKV(utils.GetStoreClient()))
	queue := notification.NewAsynqQueue(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer queue.Close()
	scheduler := notification.NewDefaultScheduler(queue)

	// Services.
	reminderService := reminderSvc.NewDefaultReminderService(kvStore, scheduler)
	noteService := noteSvc.NewDefaultNoteService(kvStore)
	settingsService := settingsSvc.NewDefaultSettingsService(kvStore)

	// Handlers and routes.
	reminderHandler := handlers.NewReminderHandler(reminderService)
	noteHandler := handlers.NewNoteHandler(noteService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	routes.RegisterRoutes(router, reminderHandler, noteHandler, settingsHandler)

	// Deliver fired notifications in the background.
	cron.InitNotificationWorker()

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
