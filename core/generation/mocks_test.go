package generation

import (
	"context"
	"sync"
	"time"

	"seo-content-api/core/domain"
	"seo-content-api/core/interfaces"
)

// mockGenerator is a mock implementation of the TextGenerator interface
type mockGenerator struct {
	generateFunc func(ctx context.Context, prompt, model, apiKey string) (*domain.GenerationResult, error)
	calls        int
}

func (m *mockGenerator) Generate(ctx context.Context, prompt, model, apiKey string) (*domain.GenerationResult, error) {
	m.calls++
	if m.generateFunc != nil {
		return m.generateFunc(ctx, prompt, model, apiKey)
	}
	return &domain.GenerationResult{RawText: "", Model: model}, nil
}

// mapCache is a map-backed Cache that honours ErrCacheMiss
type mapCache struct {
	mu      sync.Mutex
	items   map[string][]byte
	ttls    map[string]time.Duration
	setFunc func(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

func newMapCache() *mapCache {
	return &mapCache{items: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (m *mapCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.items[key]
	if !ok {
		return nil, interfaces.ErrCacheMiss
	}
	return v, nil
}

func (m *mapCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setFunc != nil {
		return m.setFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	m.ttls[key] = ttl
	return nil
}

func (m *mapCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

// mockLogger records messages by level
type mockLogger struct {
	mu       sync.Mutex
	messages map[string][]string
}

func (m *mockLogger) record(level, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.messages == nil {
		m.messages = map[string][]string{}
	}
	m.messages[level] = append(m.messages[level], msg)
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) { m.record("debug", msg) }
func (m *mockLogger) Info(msg string, fields map[string]interface{})  { m.record("info", msg) }
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  { m.record("warn", msg) }
func (m *mockLogger) Error(msg string, fields map[string]interface{}) { m.record("error", msg) }

// mockMetrics counts observations
type mockMetrics struct {
	generations int
	failures    []int
	lastParsed  domain.ParsedContent
}

func (m *mockMetrics) ObserveGeneration(model string, duration time.Duration, parsed domain.ParsedContent) {
	m.generations++
	m.lastParsed = parsed
}

func (m *mockMetrics) ObserveProviderFailure(model string, statusCode int) {
	m.failures = append(m.failures, statusCode)
}

// mockTopics is a mock TopicSource
type mockTopics struct {
	topicsFunc func(ctx context.Context, sessionID string) ([]string, error)
}

func (m *mockTopics) Topics(ctx context.Context, sessionID string) ([]string, error) {
	if m.topicsFunc != nil {
		return m.topicsFunc(ctx, sessionID)
	}
	return nil, nil
}
