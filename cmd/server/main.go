package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/clearlabel/clearlabel/internal/config"
	"github.com/clearlabel/clearlabel/internal/handlers"
	"github.com/clearlabel/clearlabel/internal/middleware"
	"github.com/clearlabel/clearlabel/internal/qr"
	"github.com/clearlabel/clearlabel/internal/repository"
	"github.com/clearlabel/clearlabel/internal/service"
	"github.com/clearlabel/clearlabel/internal/web"
	"github.com/clearlabel/clearlabel/pkg/logger"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting product transparency server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"data_dir", cfg.Store.DataDir,
		"log_level", cfg.LogLevel,
	)

	// Parse the embedded HTML views
	templates, err := web.New()
	if err != nil {
		log.Error("failed to load templates", "error", err)
		os.Exit(1)
	}

	// Initialize stores
	productRepo := repository.NewFileProductRepository(cfg.Store.DataDir, log)
	feedbackStore := repository.NewFileFeedbackStore(cfg.Store.FeedbackFile, log)

	// Initialize services
	productService := service.NewProductService(productRepo)

	// QR images are written under the static dir and served from /static
	generator := qr.NewGenerator(cfg.Store.StaticDir)

	// Flash messages ride on a signed cookie
	flash := handlers.NewFlashCodec(cfg.SecretKey)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log)
	pageHandler := handlers.NewPageHandler(productService, generator, templates, flash, cfg.PublicBaseURL, log)
	productHandler := handlers.NewProductHandler(productService, feedbackStore, templates, flash, log)
	searchHandler := handlers.NewSearchHandler(productService, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// HTML pages
	r.Get("/", pageHandler.Index)
	r.Post("/generate", pageHandler.Generate)
	r.Get("/product/{productKey}", productHandler.View)
	r.Post("/product/{productKey}", productHandler.SubmitFeedback)

	// JSON endpoints, CORS-enabled so external pages can query them
	r.Group(func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
		r.Get("/search", searchHandler.Search)
		r.Get("/healthz", healthHandler.ServeHTTP)
	})

	// Static files, including generated QR images under /static/qrcodes/
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.Store.StaticDir))))

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
