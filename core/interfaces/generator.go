// ABOUTME: Contracts for the text generation provider and for generation metrics
// ABOUTME: The provider is opaque to the core: a prompt and a model in, text or an error out

package interfaces

import (
	"context"
	"time"

	"seo-content-api/core/domain"
)

// TextGenerator sends one prompt to a generation provider.
// apiKey may be empty, in which case the implementation uses its configured key.
// Failures are returned as *errors.ExternalAPIError where the provider responded.
type TextGenerator interface {
	Generate(ctx context.Context, prompt, model, apiKey string) (*domain.GenerationResult, error)
}

// MetricsRecorder receives generation outcomes
type MetricsRecorder interface {
	ObserveGeneration(model string, duration time.Duration, parsed domain.ParsedContent)
	ObserveProviderFailure(model string, statusCode int)
}
