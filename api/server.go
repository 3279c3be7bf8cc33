// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation, request validation, middleware and the metrics endpoint

package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"seo-content-api/api/middleware"
	"seo-content-api/core/interfaces"
)

const (
	apiTitle       = "SEO Content API"
	apiVersion     = "1.0.0"
	apiDescription = "Generates SEO page content with a text generation provider and returns the parsed title, meta description, word count and downloadable HTML"
)

// MetricsExporter exposes request instrumentation and the scrape endpoint
type MetricsExporter interface {
	Middleware(next http.Handler) http.Handler
	Handler() http.Handler
}

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger    interfaces.Logger
	Metrics   MetricsExporter
	RateLimit float64 // requests per second per IP; 0 disables limiting
	RateBurst int
}

func corsOptions() cors.Options {
	return cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{"Content-Disposition", middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}
}

func humaConfig() huma.Config {
	config := huma.DefaultConfig(apiTitle, apiVersion)
	config.Info.Description = apiDescription
	return config
}

// NewAPI creates and configures a new Huma API instance
func NewAPI() (huma.API, chi.Router) {
	router := chi.NewRouter()
	router.Use(cors.Handler(corsOptions()))

	// The OpenAPI spec is served at /openapi.json and the docs UI at /docs
	return humachi.New(router, humaConfig()), router
}

// NewAPIWithMiddleware creates a new API with middleware configured.
// Middleware must be registered before humachi mounts any route.
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	// CORS first so preflights are never rate limited
	router.Use(cors.Handler(corsOptions()))

	if cfg.Metrics != nil {
		router.Use(cfg.Metrics.Middleware)
	}

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateBurst)
		router.Use(middleware.RateLimitMiddleware(limiter))
	}

	api := humachi.New(router, humaConfig())

	if cfg.Metrics != nil {
		router.Method(http.MethodGet, "/metrics", cfg.Metrics.Handler())
	}

	return api, router
}
