package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"loan-service/configs"
	"loan-service/internal/handler"
	"loan-service/internal/middleware"
	"loan-service/internal/service"
)

func main() {
	// Initialize logger
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)

	// Load .env if present, then configuration
	_ = godotenv.Load()

	cfg, err := configs.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize services
	services := service.NewService(service.Dependencies{
		Logger: log,
		Config: cfg,
	})

	// Initialize handlers
	handlersAPI := handler.NewHandler(handler.Dependencies{
		Services: services,
		Logger:   log,
		Config:   cfg,
	})

	// Initialize router
	router := mux.NewRouter()

	router.HandleFunc("/", handlersAPI.Status.Home).Methods(http.MethodGet)
	router.HandleFunc("/api/hello", handlersAPI.Status.Hello).Methods(http.MethodGet)
	router.HandleFunc("/api/calculate-loan", handlersAPI.Loan.Calculate).Methods(http.MethodPost)
	router.HandleFunc("/test", handlersAPI.Status.Status).Methods(http.MethodGet)

	// Rate limiter shared across requests
	limiter := middleware.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.RefillInterval)
	defer limiter.Stop()

	// CORS for browser callers
	cors := handlers.CORS(
		handlers.AllowedOrigins(cfg.CORS.AllowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
		handlers.AllowCredentials(),
	)

	chain := alice.New(
		handlers.RecoveryHandler(),
		cors,
		middleware.LogMiddleware(log),
		middleware.RateLimitMiddleware(limiter),
	).Then(router)

	// Configure and start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      chain,
		ReadTimeout:  time.Second * 15,
		WriteTimeout: time.Second * 15,
		IdleTimeout:  time.Second * 60,
	}

	// Start the server in a goroutine
	go func() {
		log.Infof("Starting server on port %d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Info("Server gracefully stopped")
}
