package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"golang.org/x/time/rate"
	"gopkg.in/natefinch/lumberjack.v2"

	"cinedex/api"
	"cinedex/config"
	"cinedex/handlers"
	"cinedex/internal/database"
	"cinedex/internal/limiter"
	"cinedex/services/catalog"
	"cinedex/services/collections"
	"cinedex/services/metadata"
	"cinedex/utils"
)

func main() {
	configPath := flag.String("config", "", "path to JSON config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("[server] config: %v", err)
	}

	logger := setupLogging(cfg)

	db, err := database.NewDB(database.Config{
		DatabasePath: filepath.Join(cfg.DataDir, "cinedex.db"),
	})
	if err != nil {
		log.Fatalf("[server] database: %v", err)
	}
	defer db.Close()

	lim := limiter.New(cfg.MaxConcurrentFetches)
	client := metadata.NewClient(metadata.ClientConfig{
		APIKey:         cfg.TMDBAPIKey,
		BaseURL:        cfg.TMDBBaseURL,
		Limiter:        lim,
		RetryAttempts:  cfg.RetryAttempts,
		RetryBaseDelay: time.Duration(cfg.RetryBaseDelayMS) * time.Millisecond,
	})
	hydrator := metadata.NewHydrator(client, cfg.MaxConcurrentFetches)
	collectionsSvc := collections.NewService(db.Collections)
	catalogSvc := catalog.NewService()

	router := utils.NewRouter()
	router.Use(api.RequestLogMiddleware(logger))

	handlers.RegisterRoutes(router,
		handlers.NewCollectionsHandler(collectionsSvc),
		handlers.NewMediaHandler(client, hydrator, collectionsSvc),
		handlers.NewCatalogHandler(catalogSvc),
	)

	rl := api.NewIPRateLimiter(rateLimit(cfg), cfg.RateLimitBurst)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      api.RateLimitHandler(rl, router),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[server] listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown", "error", err)
	}
}

func setupLogging(cfg config.Config) *slog.Logger {
	var w io.Writer = os.Stdout
	if cfg.LogFile != "" {
		w = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    20, // megabytes
			MaxBackups: 3,
			MaxAge:     14, // days
			Compress:   true,
		})
	}
	logger := slog.New(slog.NewTextHandler(w, nil))
	slog.SetDefault(logger)
	log.SetOutput(w)
	return logger
}

func rateLimit(cfg config.Config) rate.Limit {
	if cfg.RateLimitPerSecond <= 0 {
		return rate.Limit(20)
	}
	return rate.Limit(cfg.RateLimitPerSecond)
}
