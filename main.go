package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/fighter-franchise/internal/cache"
	"github.com/mauv0809/fighter-franchise/internal/catalog"
	"github.com/mauv0809/fighter-franchise/internal/config"
	"github.com/mauv0809/fighter-franchise/internal/database"
	server "github.com/mauv0809/fighter-franchise/internal/http"
	"github.com/mauv0809/fighter-franchise/internal/metrics"
)

func main() {
	// Start profiling timer
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()
	db, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken)
	dbInitDuration := time.Since(startTime)
	log.Info("Database initialization time recorded", "duration_ms", dbInitDuration.Milliseconds())
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer func() {
		log.Info("Closing database connection")
		db.Close()
	}()

	listCache := openCache(cfg.RedisURL)

	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()
	s := server.NewServer(catalog.New(db), listCache, metricsSvc, metricsHandler, cfg)

	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		// Create a context with a timeout for the shutdown.
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Attempt to gracefully shut down the server.
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}

// openCache connects to Redis when a URL is configured. The server runs
// uncached when Redis is unset or unreachable.
func openCache(redisURL string) cache.Cache {
	if redisURL == "" {
		return cache.Nop{}
	}
	c, err := cache.NewRedis(context.Background(), redisURL)
	if err != nil {
		log.Warn("Redis unavailable, serving without cache", "error", err)
		return cache.Nop{}
	}
	log.Info("List cache enabled")
	return c
}
