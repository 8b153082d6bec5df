package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/timmy/memeshare/internal/api"
	"github.com/timmy/memeshare/internal/config"
	"github.com/timmy/memeshare/internal/imagehost"
	"github.com/timmy/memeshare/internal/logger"
	"github.com/timmy/memeshare/internal/repository"
	"github.com/timmy/memeshare/internal/service"
	"github.com/timmy/memeshare/internal/source/imgflip"
	"github.com/timmy/memeshare/internal/store"
)

func main() {
	appLogger := logger.NewDefault()
	logger.SetDefaultLogger(appLogger)
	defer logger.Sync()

	// CONFIG_PATH points at a config file for production deployments
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to load config")
	}

	ctx := context.Background()

	recordStore, err := store.NewStore(ctx, cfg)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to initialize record store")
	}
	defer recordStore.Close()
	records := repository.NewRecordRepository(recordStore)

	host, err := imagehost.New(cfg)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to initialize image host")
	}

	templates := imgflip.NewAdapter(cfg.Templates.BaseURL, cfg.Templates.Timeout)
	pool := make([]service.Caption, 0, len(cfg.Captions))
	for _, c := range cfg.Captions {
		pool = append(pool, service.Caption{Text: c.Text, Weight: c.Weight})
	}
	captions, err := service.NewCaptionService(templates, pool)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to initialize caption service")
	}

	services := &api.Services{
		Templates:    service.NewTemplateService(templates),
		Explore:      service.NewExploreService(records),
		Uploads:      service.NewUploadService(host, records),
		Interactions: service.NewInteractionService(records),
		Leaderboard:  service.NewLeaderboardService(records, cfg.Leaderboard.Limit),
		Profiles:     service.NewProfileService(records),
		Captions:     captions,
		ImageHost:    host.Name(),
	}

	router := api.SetupRouter(services, cfg, appLogger)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		appLogger.WithFields(logger.Fields{
			"port":       cfg.Server.Port,
			"mode":       cfg.Server.Mode,
			"store":      cfg.Store.Driver,
			"image_host": host.Name(),
		}).Info("Starting API server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.WithError(err).Error("Server forced to shutdown")
	}

	appLogger.Info("Server exited")
}
