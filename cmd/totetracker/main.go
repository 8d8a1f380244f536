package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"totetracker/internal/api"
	"totetracker/internal/config"
	"totetracker/internal/db"
	"totetracker/internal/logger"
	"totetracker/internal/qr"
	"totetracker/internal/web"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		os.Exit(1)
	}

	log, err := logger.Init(cfg.Environment, cfg.LogLevel)
	if err != nil {
		os.Exit(1)
	}
	defer log.Sync()

	// Open database, creating the schema on first run.
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		zap.L().Error("failed to open database", zap.Error(err))
		os.Exit(1)
	}
	defer database.Close()

	if err := db.EnsureSchema(database); err != nil {
		zap.L().Error("failed to ensure database schema", zap.Error(err))
		os.Exit(1)
	}
	zap.L().Info("database ready", zap.String("path", cfg.DBPath))

	encoder := &qr.Encoder{BaseURL: cfg.BaseURL, Dir: cfg.QRDir}
	if err := os.MkdirAll(cfg.QRDir, 0o755); err != nil {
		zap.L().Error("failed to create qr cache directory", zap.Error(err))
		os.Exit(1)
	}

	// Set up routers: API and QR images take priority, web pages handle
	// the rest.
	apiRouter := api.NewRouter(database, encoder)
	webRouter, err := web.NewRouter(database, encoder)
	if err != nil {
		zap.L().Error("failed to set up web router", zap.Error(err))
		os.Exit(1)
	}

	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("/qrcodes/", apiRouter)
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", webRouter)

	handler := api.LoggingMiddleware(api.MetricsMiddleware(mux))

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-quit
		zap.L().Info("shutdown signal received", zap.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			zap.L().Error("server forced to shutdown", zap.Error(err))
		}
	}()

	zap.L().Info("server started", zap.String("addr", cfg.Addr), zap.String("base_url", cfg.BaseURL))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		zap.L().Error("server error", zap.Error(err))
		os.Exit(1)
	}

	zap.L().Info("server stopped, closing database")
}
