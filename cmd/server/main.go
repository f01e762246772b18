package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"fancychat-backend/internal/config"
	"fancychat-backend/internal/handlers"
	"fancychat-backend/internal/middleware"
	"fancychat-backend/internal/router"
	"fancychat-backend/internal/services"
)

func main() {
	log.Println("🚀 Starting FancyChat Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")
	if cfg.OpenRouterAPIKey == "" {
		log.Println("⚠ OPENROUTER_API_KEY not set; chat requests will fail until configured")
	}

	// ──── Step 2: Initialize OpenRouter Client ────
	openRouterService := services.NewOpenRouterService(cfg)
	log.Println("✓ OpenRouter client initialized")

	// ──── Step 3: Initialize Metrics ────
	registry := prometheus.NewRegistry()
	metrics := middleware.NewMetrics(registry)
	log.Println("✓ Prometheus metrics registered")

	// ──── Initialize Handlers ────
	chatHandler := handlers.NewChatHandler(openRouterService)

	// ──── Step 4: Start HTTP Server ────
	r := router.New(chatHandler, metrics, registry, cfg.AppURL)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 45 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ FancyChat Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api/chat", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
