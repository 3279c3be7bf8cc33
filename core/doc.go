// Package core contains the business logic for the SEO Content API.
// It has no knowledge of HTTP routing or of any concrete cache, logger or
// model provider.
//
// The core package is organized into several sub-packages:
//
// - domain: Request, result and session models plus the brand, length and model catalogs
// - prompt: Builds the model prompt from a GenerationRequest
// - content: Extracts title and meta description, counts words and renders HTML
// - session: Server-side topic lists that feed the prompt structure
// - generation: Validates input, calls the text generator and stores results
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, generator, logger, metrics)
//
// # Usage Example
//
//	import (
//	    "seo-content-api/core/generation"
//	    "seo-content-api/core/interfaces"
//	    "seo-content-api/core/session"
//	)
//
//	deps := interfaces.Dependencies{
//	    Cache:     myCache,     // implements interfaces.Cache
//	    Generator: myGenerator, // implements interfaces.TextGenerator
//	    Logger:    myLogger,    // implements interfaces.Logger
//	    Metrics:   myMetrics,   // implements interfaces.MetricsRecorder
//	}
//
//	sessions := session.NewSessionService(deps, time.Hour)
//	service := generation.NewGenerationService(deps, sessions, generation.Options{
//	    DefaultModel: domain.DefaultModel,
//	    ResultTTL:    24 * time.Hour,
//	})
//
//	gen, err := service.Generate(ctx, generation.Input{
//	    Brand:          "Cotton On",
//	    Category:       "Womens Dresses",
//	    PrimaryKeyword: "summer dresses",
//	    Length:         "Short (~750 words)",
//	})
package core
