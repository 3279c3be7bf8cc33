// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Provides clean separation between business logic and API layer

package mappers

import (
	"seo-content-api/api/dto/requests"
	"seo-content-api/api/dto/responses"
	"seo-content-api/core/domain"
	"seo-content-api/core/generation"
)

// ToGenerationInput converts a form submission to a service input
func ToGenerationInput(req requests.GenerateRequest) generation.Input {
	return generation.Input{
		APIKey:            req.APIKey,
		Brand:             req.Brand,
		Category:          req.Category,
		PrimaryKeyword:    req.PrimaryKeyword,
		SecondaryKeywords: req.SecondaryKeywords,
		Length:            req.Length,
		WordTarget:        req.WordTarget,
		Topics:            req.Topics,
		SessionID:         req.SessionID,
		Model:             req.Model,
	}
}

// ToContentResponse converts post-processed content to its DTO
func ToContentResponse(parsed domain.ParsedContent, doc domain.HTMLDocument, outline []domain.Heading) responses.ContentResponse {
	headings := make([]responses.HeadingResponse, 0, len(outline))
	for _, h := range outline {
		headings = append(headings, responses.HeadingResponse{Level: h.Level, Text: h.Text})
	}
	return responses.ContentResponse{
		PageTitle:       parsed.PageTitle,
		MetaDescription: parsed.MetaDescription,
		TitleFound:      parsed.HasTitle(),
		MetaFound:       parsed.HasMetaDescription(),
		BodyText:        parsed.BodyText,
		WordCount:       parsed.WordCount,
		HTML:            doc.Content,
		Outline:         headings,
	}
}

// ToGenerationResponse converts a generation record to its DTO
func ToGenerationResponse(gen *domain.Generation) *responses.GenerationResponse {
	if gen == nil {
		return nil
	}

	return &responses.GenerationResponse{
		ID:              gen.ID,
		Model:           gen.Result.Model,
		WordTarget:      gen.Request.WordTarget,
		DownloadURL:     "/generations/" + gen.ID + "/download",
		ContentResponse: ToContentResponse(gen.Parsed, gen.Document, gen.Outline),
		Usage: responses.UsageResponse{
			PromptTokens:     gen.Result.Usage.PromptTokens,
			CompletionTokens: gen.Result.Usage.CompletionTokens,
			TotalTokens:      gen.Result.Usage.TotalTokens,
		},
		CreatedAt: gen.CreatedAt,
	}
}

// ToPromptResponse converts a previewed request to its DTO
func ToPromptResponse(req domain.GenerationRequest, prompt string) *responses.PromptResponse {
	return &responses.PromptResponse{
		Prompt:     prompt,
		Brand:      req.Brand,
		Model:      req.Model,
		WordTarget: req.WordTarget,
		Topics:     req.Topics,
	}
}
