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

	"github.com/acme-labs/showcase-api/internal/config"
	"github.com/acme-labs/showcase-api/internal/handlers"
	"github.com/acme-labs/showcase-api/internal/middleware"
	"github.com/acme-labs/showcase-api/internal/repository"
	"github.com/acme-labs/showcase-api/internal/service"
	"github.com/acme-labs/showcase-api/pkg/logger"
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

	log.Info("starting showcase api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
		"auth_enabled", cfg.Auth.Enabled,
	)

	// Ensure the upload directory exists
	if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
		log.Error("failed to create upload directory", "dir", cfg.Upload.Dir, "error", err)
		os.Exit(1)
	}

	// Initialize repositories
	itemRepo := repository.NewInMemoryItemRepository()

	// Initialize services
	itemService := service.NewItemService(itemRepo)
	modelCatalog := service.NewModelCatalog()

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log)
	greetingHandler := handlers.NewGreetingHandler()
	itemHandler := handlers.NewItemHandler(itemService, log)
	modelHandler := handlers.NewModelHandler(modelCatalog, log)
	fileHandler := handlers.NewFileHandler(cfg.Upload, log)
	userHandler := handlers.NewUserHandler()

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(time.Duration(cfg.Server.RequestTimeout) * time.Second))
	r.Use(middleware.ProcessTime)

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-API-Key"},
		ExposedHeaders:   []string{"X-Process-Time", "X-Error"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Register health check endpoint
	r.Get("/health", healthHandler.ServeHTTP)

	// Greeting endpoints
	r.Get("/", greetingHandler.Root)
	r.Get("/hello/{name}", greetingHandler.SayHello)

	// Model catalog endpoint
	r.Get("/models/{modelName}", modelHandler.GetModel)

	// Legacy named-item lookup
	r.Get("/item/{id}", itemHandler.LookupItem)

	// Item endpoints
	r.Route("/items", func(r chi.Router) {
		r.With(middleware.CommonQueryParams).Get("/", itemHandler.ListItems)
		r.Get("/{itemID}", itemHandler.ReadItem)

		r.Group(func(r chi.Router) {
			if cfg.Auth.Enabled {
				r.Use(middleware.APIKeyAuth(cfg.Auth))
			}
			r.Post("/", itemHandler.CreateItem)
			r.Post("/save", itemHandler.SaveItem)
		})
	})

	// Nested body endpoints
	r.Route("/nested", func(r chi.Router) {
		r.Post("/parameters", itemHandler.NestedParameters)
		r.Post("/models", itemHandler.NestedModels)
	})

	// User listing endpoint
	r.With(middleware.CommonQueryParams).Get("/users/", userHandler.ListUsers)

	// File upload endpoints
	r.Post("/files", fileHandler.CreateFile)
	r.Post("/upload-file", fileHandler.UploadFile)

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
