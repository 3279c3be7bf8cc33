// ABOUTME: Main entry point for the SEO Content API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"seo-content-api/api"
	"seo-content-api/api/handlers"
	"seo-content-api/api/middleware"
	"seo-content-api/core/domain"
	"seo-content-api/core/generation"
	"seo-content-api/core/interfaces"
	"seo-content-api/core/session"
	"seo-content-api/infrastructure/cache/memory"
	"seo-content-api/infrastructure/cache/redis"
	"seo-content-api/infrastructure/cache/sqlite"
	stdhttp "seo-content-api/infrastructure/http/standard"
	"seo-content-api/infrastructure/llm/openai"
	logruslogger "seo-content-api/infrastructure/logger/logrus"
	"seo-content-api/infrastructure/metrics/prometheus"
	"seo-content-api/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if !domain.IsSupportedModel(cfg.Provider.DefaultModel) {
		log.Fatalf("Invalid configuration: unsupported default model %q", cfg.Provider.DefaultModel)
	}

	// Create logger
	logger := logruslogger.NewLogger(logruslogger.Options{
		Level: cfg.Log.Level,
		File:  cfg.Log.File,
	})
	defer logger.Close()

	logger.Info("Starting SEO Content API", map[string]interface{}{
		"port":          cfg.Server.Port,
		"cache_type":    cfg.Cache.Type,
		"default_model": cfg.Provider.DefaultModel,
		"server_key":    cfg.Provider.APIKey != "",
	})

	cache, closeCache := newCache(cfg.Cache, logger)
	defer closeCache()

	// Provider client; outgoing calls are logged without their Authorization header
	httpClient := stdhttp.NewStandardHTTPClientWithTransport(cfg.Provider.Timeout, &middleware.LoggingRoundTripper{
		Transport: http.DefaultTransport,
		Logger:    logger,
	})
	provider := openai.NewClient(httpClient, cfg.Provider.BaseURL, cfg.Provider.APIKey)

	metrics := prometheus.NewRecorder()

	// Create dependencies container
	deps := interfaces.Dependencies{
		Cache:     cache,
		Generator: provider,
		Logger:    logger,
		Metrics:   metrics,
	}

	// Create services
	sessionService := session.NewSessionService(deps, cfg.Generation.SessionTTL)
	generationService := generation.NewGenerationService(deps, sessionService, generation.Options{
		DefaultModel:          cfg.Provider.DefaultModel,
		ProviderKeyConfigured: provider.HasKey(),
		ResultTTL:             cfg.Generation.ResultTTL,
	})

	// Create API with middleware
	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
		Logger:    logger,
		Metrics:   metrics,
		RateLimit: cfg.Server.RateLimit,
		RateBurst: cfg.Server.RateBurst,
	})

	// Create and register handlers
	checks := []handlers.HealthCheck{{Name: "provider", Check: provider.Ping}}
	if pinger, ok := cache.(interface{ Ping(context.Context) error }); ok {
		checks = append(checks, handlers.HealthCheck{Name: "cache", Check: pinger.Ping})
	}
	handlers.NewCatalogHandler(cfg.Provider.DefaultModel, checks...).RegisterRoutes(humaAPI)
	handlers.NewGenerationHandler(generationService).RegisterRoutes(humaAPI)
	handlers.NewSessionHandler(sessionService).RegisterRoutes(humaAPI)

	// Create HTTP server; the write timeout must outlast one provider call
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Provider.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Info("Server stopped", nil)
}

// newCache builds the configured cache backend, falling back to memory when it is unavailable
func newCache(cfg config.CacheConfig, logger interfaces.Logger) (interfaces.Cache, func()) {
	noop := func() {}
	fallback := func(backend string, err error) (interfaces.Cache, func()) {
		logger.Error(fmt.Sprintf("Failed to create %s cache, falling back to memory", backend), map[string]interface{}{
			"error": err.Error(),
		})
		return newMemoryCache(cfg), noop
	}

	switch cfg.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Redis)
		if err != nil {
			return fallback("Redis", err)
		}
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Redis.Address,
		})
		return redisCache, closer(redisCache, logger)
	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.SQLitePath)
		if err != nil {
			return fallback("SQLite", err)
		}
		logger.Info("Using SQLite cache", map[string]interface{}{
			"path": cfg.SQLitePath,
		})
		return sqliteCache, closer(sqliteCache, logger)
	default:
		logger.Info("Using memory cache", nil)
		return newMemoryCache(cfg), noop
	}
}

func newMemoryCache(cfg config.CacheConfig) interfaces.Cache {
	return memory.NewMemoryCache(time.Duration(cfg.Memory.DefaultExpiration)*time.Second, 10*time.Minute)
}

func closer(c io.Closer, logger interfaces.Logger) func() {
	return func() {
		if err := c.Close(); err != nil {
			logger.Warn("Failed to close cache", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
}

func init() {
	// Print banner
	fmt.Println(`
   ____  ______ ____     ______            __             __
  / __/ / __/ // __ \   / ____/___  ____  / /____  ____  / /_
 _\ \  / _/ / // /_/ /  / /   / __ \/ __ \/ __/ _ \/ __ \/ __/
/___/ /___//_/\____/  / /___/ /_/ / / / / /_/  __/ / / / /_
                      \____/\____/_/ /_/\__/\___/_/ /_/\__/
	`)
}
