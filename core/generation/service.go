// ABOUTME: Generation service runs one form submission end to end
// ABOUTME: Validate, build the prompt, call the provider once, post-process, store for download

package generation

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"seo-content-api/core/content"
	"seo-content-api/core/domain"
	coreerrors "seo-content-api/core/errors"
	"seo-content-api/core/interfaces"
	"seo-content-api/core/prompt"
)

const keyPrefix = "generation:"

// TopicSource resolves the topic snapshot of a form session
type TopicSource interface {
	Topics(ctx context.Context, sessionID string) ([]string, error)
}

// Options configures the generation service
type Options struct {
	// DefaultModel is used when the input names no model
	DefaultModel string

	// ProviderKeyConfigured reports that the provider has a server-side API key,
	// so requests may omit their own
	ProviderKeyConfigured bool

	// ResultTTL bounds how long generations stay downloadable
	ResultTTL time.Duration
}

// Input is one form submission
type Input struct {
	APIKey            string
	Brand             string
	Category          string
	PrimaryKeyword    string
	SecondaryKeywords string

	// Length is a length option label ("Short (~750 words)") or short name ("short")
	Length string

	// WordTarget overrides Length when positive
	WordTarget int

	Topics    []string
	SessionID string
	Model     string
}

// GenerationService handles content generation
type GenerationService struct {
	deps   interfaces.Dependencies
	topics TopicSource
	opts   Options
}

// NewGenerationService creates a new generation service instance
func NewGenerationService(deps interfaces.Dependencies, topics TopicSource, opts Options) *GenerationService {
	if opts.DefaultModel == "" {
		opts.DefaultModel = domain.DefaultModel
	}
	return &GenerationService{
		deps:   deps,
		topics: topics,
		opts:   opts,
	}
}

// BuildRequest validates the input and assembles the immutable generation request.
// It returns the API key to use alongside the request.
func (s *GenerationService) BuildRequest(ctx context.Context, in Input) (domain.GenerationRequest, string, error) {
	apiKey := strings.TrimSpace(in.APIKey)
	if apiKey == "" && !s.opts.ProviderKeyConfigured {
		return domain.GenerationRequest{}, "", coreerrors.NewValidationError("api_key", "is required")
	}
	req, err := s.assemble(ctx, in)
	if err != nil {
		return domain.GenerationRequest{}, "", err
	}
	return req, apiKey, nil
}

// Preview validates the input like Generate, minus the API key, and returns the
// prompt that would be sent. The provider is not called.
func (s *GenerationService) Preview(ctx context.Context, in Input) (domain.GenerationRequest, string, error) {
	req, err := s.assemble(ctx, in)
	if err != nil {
		return domain.GenerationRequest{}, "", err
	}
	return req, prompt.Build(req), nil
}

func (s *GenerationService) assemble(ctx context.Context, in Input) (domain.GenerationRequest, error) {
	if strings.TrimSpace(in.PrimaryKeyword) == "" {
		return domain.GenerationRequest{}, coreerrors.NewValidationError("primary_keyword", "is required")
	}
	if strings.TrimSpace(in.Category) == "" {
		return domain.GenerationRequest{}, coreerrors.NewValidationError("category", "is required")
	}

	brand, ok := domain.LookupBrand(in.Brand)
	if !ok {
		return domain.GenerationRequest{}, coreerrors.NewValidationError("brand", "unknown brand: "+in.Brand)
	}

	model := strings.TrimSpace(in.Model)
	if model == "" {
		model = s.opts.DefaultModel
	}
	if !domain.IsSupportedModel(model) {
		return domain.GenerationRequest{}, coreerrors.NewValidationError("model", "unsupported model: "+model)
	}

	wordTarget, err := resolveWordTarget(in)
	if err != nil {
		return domain.GenerationRequest{}, err
	}

	topics := in.Topics
	if in.SessionID != "" {
		if s.topics == nil {
			return domain.GenerationRequest{}, coreerrors.NewValidationError("session_id", "sessions are not available")
		}
		topics, err = s.topics.Topics(ctx, in.SessionID)
		if err != nil {
			return domain.GenerationRequest{}, err
		}
	}

	req := domain.NewGenerationRequest(
		brand.Tone,
		strings.TrimSpace(in.Category),
		brand.Name,
		strings.TrimSpace(in.PrimaryKeyword),
		strings.TrimSpace(in.SecondaryKeywords),
		wordTarget,
		topics,
		model,
	)
	return req, nil
}

func resolveWordTarget(in Input) (int, error) {
	if in.WordTarget < 0 {
		return 0, coreerrors.NewValidationError("word_target", "must be positive")
	}
	if in.WordTarget > 0 {
		return in.WordTarget, nil
	}
	if in.Length == "" {
		return domain.LengthOptions()[0].Words, nil
	}
	opt, ok := domain.LookupLength(in.Length)
	if !ok {
		return 0, coreerrors.NewValidationError("length", "unknown length option: "+in.Length)
	}
	return opt.Words, nil
}

// Generate runs the full flow for one submission. The provider is called once;
// its failure aborts the generation and is returned to the caller.
func (s *GenerationService) Generate(ctx context.Context, in Input) (*domain.Generation, error) {
	req, apiKey, err := s.BuildRequest(ctx, in)
	if err != nil {
		return nil, err
	}

	p := prompt.Build(req)

	start := time.Now()
	result, err := s.deps.Generator.Generate(ctx, p, req.Model, apiKey)
	elapsed := time.Since(start)
	if err != nil {
		status := 0
		if apiErr, ok := coreerrors.AsExternalAPI(err); ok {
			status = apiErr.StatusCode
		}
		s.deps.Logger.Error("Text generation failed", map[string]interface{}{
			"model":       req.Model,
			"status_code": status,
			"duration":    elapsed.String(),
			"error":       err.Error(),
		})
		if s.deps.Metrics != nil {
			s.deps.Metrics.ObserveProviderFailure(req.Model, status)
		}
		return nil, coreerrors.WrapError(err, "generate content")
	}

	gen := Process(req, p, result)
	gen.ID = uuid.New().String()

	if s.deps.Metrics != nil {
		s.deps.Metrics.ObserveGeneration(req.Model, elapsed, gen.Parsed)
	}
	s.deps.Logger.Info("Content generated", map[string]interface{}{
		"generation_id": gen.ID,
		"model":         req.Model,
		"category":      req.Category,
		"topics":        len(req.Topics),
		"word_count":    gen.Parsed.WordCount,
		"word_target":   req.WordTarget,
		"has_title":     gen.Parsed.HasTitle(),
		"has_meta":      gen.Parsed.HasMetaDescription(),
		"duration":      elapsed.String(),
	})

	if err := s.store(ctx, gen); err != nil {
		// the caller still gets the content; only the later download is lost
		s.deps.Logger.Warn("Failed to store generation", map[string]interface{}{
			"generation_id": gen.ID,
			"error":         err.Error(),
		})
	}

	return gen, nil
}

// Process post-processes provider output into a generation record without an ID
func Process(req domain.GenerationRequest, p string, result *domain.GenerationResult) *domain.Generation {
	doc := content.Render(result.RawText)
	outline, err := content.Outline(doc.Content)
	if err != nil {
		outline = []domain.Heading{}
	}
	return &domain.Generation{
		Request:   req,
		Prompt:    p,
		Result:    *result,
		Parsed:    content.Parse(result.RawText),
		Document:  doc,
		Outline:   outline,
		CreatedAt: time.Now().UTC(),
	}
}

// GetGeneration retrieves a stored generation by ID
func (s *GenerationService) GetGeneration(ctx context.Context, id string) (*domain.Generation, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, coreerrors.NewValidationError("id", "invalid generation ID format")
	}

	data, err := s.deps.Cache.Get(ctx, keyPrefix+id)
	if err != nil {
		if errors.Is(err, interfaces.ErrCacheMiss) {
			return nil, &coreerrors.NotFoundError{Resource: "generation", ID: id}
		}
		return nil, coreerrors.WrapError(err, "load generation")
	}

	var gen domain.Generation
	if err := json.Unmarshal(data, &gen); err != nil {
		return nil, coreerrors.WrapError(err, "decode generation")
	}
	return &gen, nil
}

// Download returns the rendered HTML of a stored generation
func (s *GenerationService) Download(ctx context.Context, id string) (domain.HTMLDocument, error) {
	gen, err := s.GetGeneration(ctx, id)
	if err != nil {
		return domain.HTMLDocument{}, err
	}
	return gen.Document, nil
}

func (s *GenerationService) store(ctx context.Context, gen *domain.Generation) error {
	data, err := json.Marshal(gen)
	if err != nil {
		return err
	}
	return s.deps.Cache.Set(ctx, keyPrefix+gen.ID, data, s.opts.ResultTTL)
}
