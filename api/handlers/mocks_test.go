package handlers

import (
	"context"

	"seo-content-api/core/domain"
	"seo-content-api/core/generation"
)

// mockGenerationService is a mock implementation of the generation service
type mockGenerationService struct {
	previewFunc       func(ctx context.Context, in generation.Input) (domain.GenerationRequest, string, error)
	generateFunc      func(ctx context.Context, in generation.Input) (*domain.Generation, error)
	getGenerationFunc func(ctx context.Context, id string) (*domain.Generation, error)
	downloadFunc      func(ctx context.Context, id string) (domain.HTMLDocument, error)
}

func (m *mockGenerationService) Preview(ctx context.Context, in generation.Input) (domain.GenerationRequest, string, error) {
	if m.previewFunc != nil {
		return m.previewFunc(ctx, in)
	}
	return domain.GenerationRequest{}, "", nil
}

func (m *mockGenerationService) Generate(ctx context.Context, in generation.Input) (*domain.Generation, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, in)
	}
	return &domain.Generation{}, nil
}

func (m *mockGenerationService) GetGeneration(ctx context.Context, id string) (*domain.Generation, error) {
	if m.getGenerationFunc != nil {
		return m.getGenerationFunc(ctx, id)
	}
	return &domain.Generation{ID: id}, nil
}

func (m *mockGenerationService) Download(ctx context.Context, id string) (domain.HTMLDocument, error) {
	if m.downloadFunc != nil {
		return m.downloadFunc(ctx, id)
	}
	return domain.NewHTMLDocument(""), nil
}

// mockSessionService is a mock implementation of the session service
type mockSessionService struct {
	createFunc    func(ctx context.Context) (*domain.Session, error)
	getFunc       func(ctx context.Context, id string) (*domain.Session, error)
	addTopicFunc  func(ctx context.Context, id, text string) (*domain.Session, error)
	editTopicFunc func(ctx context.Context, id string, index int, text string) (*domain.Session, error)
}

func (m *mockSessionService) CreateSession(ctx context.Context) (*domain.Session, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx)
	}
	return domain.NewSession(0), nil
}

func (m *mockSessionService) GetSession(ctx context.Context, id string) (*domain.Session, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return &domain.Session{ID: id}, nil
}

func (m *mockSessionService) AddTopic(ctx context.Context, id, text string) (*domain.Session, error) {
	if m.addTopicFunc != nil {
		return m.addTopicFunc(ctx, id, text)
	}
	return &domain.Session{ID: id, Topics: []string{text}}, nil
}

func (m *mockSessionService) EditTopic(ctx context.Context, id string, index int, text string) (*domain.Session, error) {
	if m.editTopicFunc != nil {
		return m.editTopicFunc(ctx, id, index, text)
	}
	return &domain.Session{ID: id}, nil
}
