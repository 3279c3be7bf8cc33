// ABOUTME: Generation handlers for the Huma API
// ABOUTME: Prompt preview, post-processing, generation, stored results and HTML download

package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"seo-content-api/api/dto/mappers"
	"seo-content-api/api/dto/requests"
	"seo-content-api/api/dto/responses"
	"seo-content-api/core/content"
	"seo-content-api/core/domain"
	"seo-content-api/core/generation"
)

// GenerationService interface defines the methods needed from the generation service
type GenerationService interface {
	Preview(ctx context.Context, in generation.Input) (domain.GenerationRequest, string, error)
	Generate(ctx context.Context, in generation.Input) (*domain.Generation, error)
	GetGeneration(ctx context.Context, id string) (*domain.Generation, error)
	Download(ctx context.Context, id string) (domain.HTMLDocument, error)
}

// GenerationHandler handles generation-related HTTP requests
type GenerationHandler struct {
	service GenerationService
}

// NewGenerationHandler creates a new generation handler
func NewGenerationHandler(service GenerationService) *GenerationHandler {
	return &GenerationHandler{service: service}
}

// RegisterRoutes registers all generation-related routes
func (h *GenerationHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "previewPrompt",
		Method:      http.MethodPost,
		Path:        "/prompt",
		Summary:     "Preview the prompt",
		Description: "Validates the form and returns the prompt that /generate would send, without calling the provider",
		Tags:        []string{"Generation"},
	}, h.PreviewPrompt)

	huma.Register(api, huma.Operation{
		OperationID: "parseContent",
		Method:      http.MethodPost,
		Path:        "/parse",
		Summary:     "Post-process generated text",
		Description: "Extracts title and meta description, cleans the body, counts words and renders HTML",
		Tags:        []string{"Generation"},
	}, h.ParseContent)

	huma.Register(api, huma.Operation{
		OperationID: "generateContent",
		Method:      http.MethodPost,
		Path:        "/generate",
		Summary:     "Generate SEO content",
		Description: "Builds the prompt, calls the text provider once and returns the parsed result",
		Tags:        []string{"Generation"},
	}, h.Generate)

	huma.Register(api, huma.Operation{
		OperationID: "getGeneration",
		Method:      http.MethodGet,
		Path:        "/generations/{id}",
		Summary:     "Get a stored generation",
		Tags:        []string{"Generation"},
	}, h.GetGeneration)

	huma.Register(api, huma.Operation{
		OperationID: "downloadGeneration",
		Method:      http.MethodGet,
		Path:        "/generations/{id}/download",
		Summary:     "Download the generated HTML",
		Tags:        []string{"Generation"},
	}, h.Download)
}

// GenerateInput defines the input for the Generate and PreviewPrompt operations
type GenerateInput struct {
	Body requests.GenerateRequest `json:"body"`
}

// PromptOutput defines the output for the PreviewPrompt operation
type PromptOutput struct {
	Body responses.PromptResponse
}

// PreviewPrompt handles the POST /prompt endpoint
func (h *GenerationHandler) PreviewPrompt(ctx context.Context, input *GenerateInput) (*PromptOutput, error) {
	input.Body.ApplyDefaults()

	req, p, err := h.service.Preview(ctx, mappers.ToGenerationInput(input.Body))
	if err != nil {
		return nil, toHumaError(err)
	}
	return &PromptOutput{Body: *mappers.ToPromptResponse(req, p)}, nil
}

// ParseInput defines the input for the ParseContent operation
type ParseInput struct {
	Body requests.ParseRequest `json:"body"`
}

// ParseOutput defines the output for the ParseContent operation
type ParseOutput struct {
	Body responses.ContentResponse
}

// ParseContent handles the POST /parse endpoint
func (h *GenerationHandler) ParseContent(ctx context.Context, input *ParseInput) (*ParseOutput, error) {
	doc := content.Render(input.Body.Text)
	outline, err := content.Outline(doc.Content)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &ParseOutput{
		Body: mappers.ToContentResponse(content.Parse(input.Body.Text), doc, outline),
	}, nil
}

// GenerationOutput defines the output for the Generate and GetGeneration operations
type GenerationOutput struct {
	Body responses.GenerationResponse
}

// Generate handles the POST /generate endpoint
func (h *GenerationHandler) Generate(ctx context.Context, input *GenerateInput) (*GenerationOutput, error) {
	input.Body.ApplyDefaults()

	gen, err := h.service.Generate(ctx, mappers.ToGenerationInput(input.Body))
	if err != nil {
		return nil, toHumaError(err)
	}
	return &GenerationOutput{Body: *mappers.ToGenerationResponse(gen)}, nil
}

// GenerationIDInput identifies a stored generation
type GenerationIDInput struct {
	ID string `path:"id" doc:"Generation ID"`
}

// GetGeneration handles the GET /generations/{id} endpoint
func (h *GenerationHandler) GetGeneration(ctx context.Context, input *GenerationIDInput) (*GenerationOutput, error) {
	gen, err := h.service.GetGeneration(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &GenerationOutput{Body: *mappers.ToGenerationResponse(gen)}, nil
}

// DownloadOutput is the raw HTML attachment
type DownloadOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

// Download handles the GET /generations/{id}/download endpoint
func (h *GenerationHandler) Download(ctx context.Context, input *GenerationIDInput) (*DownloadOutput, error) {
	doc, err := h.service.Download(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &DownloadOutput{
		ContentType:        doc.MediaType + "; charset=utf-8",
		ContentDisposition: fmt.Sprintf("attachment; filename=%q", doc.Filename),
		Body:               []byte(doc.Content),
	}, nil
}
