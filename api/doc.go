// Package api provides the HTTP API layer for the SEO Content API.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration, router and middleware setup
// - handlers/: HTTP request handlers for catalog, generation and sessions
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for request logging and rate limiting
//
// # Key Features
//
// 1. Automatic OpenAPI Generation
//
// The API automatically generates OpenAPI 3.1 documentation:
// - JSON spec available at /openapi.json
// - Interactive docs at /docs
//
// 2. Request/Response Validation
//
// Huma validates request bodies from struct tags before a handler runs:
//
//	type GenerateRequest struct {
//	    Category   string   `json:"category,omitempty" maxLength:"200"`
//	    WordTarget int      `json:"word_target,omitempty" minimum:"0" maximum:"10000"`
//	    Topics     []string `json:"topics,omitempty" maxItems:"50"`
//	}
//
// Schema violations are answered with 422. Required form fields are checked
// by the generation service and answered with 400.
//
// 3. Middleware Support
//
// The API includes middleware for:
// - Request logging with unique request IDs
// - Per-IP token bucket rate limiting
// - CORS handling
// - Prometheus request metrics, exposed at /metrics
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:    logger,
//	    Metrics:   recorder,
//	    RateLimit: 2,
//	    RateBurst: 10,
//	})
//
//	handlers.NewGenerationHandler(generationService).RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Errors use the RFC 7807 problem format:
//
//	{
//	    "status": 400,
//	    "title": "Bad Request",
//	    "detail": "primary keyword is required",
//	    "errors": [{"location": "body.primary_keyword", "message": "primary keyword is required"}]
//	}
//
// Core errors are mapped to status codes in handlers/errors.go.
package api
