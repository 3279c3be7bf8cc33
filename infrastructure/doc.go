// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache using go-cache
// - cache/redis: Redis-based cache using go-redis
// - cache/sqlite: File-backed cache using go-sqlite3
// - http/standard: Standard library HTTP client with retry logic for GET
// - llm/openai: Chat-completions client implementing TextGenerator
// - logger/logrus: Structured JSON logger with optional rotated file output
// - metrics/prometheus: Prometheus collectors for HTTP and generation metrics
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache(time.Hour, 10*time.Minute)
//	err := cache.Set(ctx, "key", []byte("value"), time.Hour)
//	value, err := cache.Get(ctx, "key")
//
// Redis Cache Example:
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{
//	    Address: "localhost:6379",
//	    DB:      0,
//	})
//
// # Model Provider
//
// The OpenAI client sends one chat completion per call. POST requests are
// never retried; GET requests (used by Ping) retry transient failures:
//
//	httpClient := standard.NewStandardHTTPClient(60 * time.Second)
//	provider := openai.NewClient(httpClient, openai.DefaultBaseURL, apiKey)
//	result, err := provider.Generate(ctx, prompt, "gpt-4o", "")
//
// # Logger
//
//	logger := logrus.NewLogger(logrus.Options{Level: "info"})
//	logger.Info("Generated content", map[string]interface{}{
//	    "generation_id": id,
//	    "word_count":    812,
//	})
package infrastructure
