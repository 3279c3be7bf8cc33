// ABOUTME: Health and catalog handlers for the Huma API
// ABOUTME: The catalog lists the brand tones, length options and models the form offers

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"seo-content-api/api/dto/mappers"
	"seo-content-api/api/dto/responses"
)

// HealthCheck is a named dependency probe run by GET /health?deep=true
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

const healthCheckTimeout = 10 * time.Second

// CatalogHandler serves static form metadata
type CatalogHandler struct {
	defaultModel string
	checks       []HealthCheck
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(defaultModel string, checks ...HealthCheck) *CatalogHandler {
	return &CatalogHandler{defaultModel: defaultModel, checks: checks}
}

// RegisterRoutes registers health and catalog routes
func (h *CatalogHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Tags:        []string{"System"},
	}, h.Health)

	huma.Register(api, huma.Operation{
		OperationID: "getCatalog",
		Method:      http.MethodGet,
		Path:        "/catalog",
		Summary:     "List form options",
		Description: "Returns the brand tones, length options and models accepted by /generate",
		Tags:        []string{"Catalog"},
	}, h.GetCatalog)
}

// HealthInput defines the input for the Health operation
type HealthInput struct {
	Deep bool `query:"deep" doc:"Also probe the cache and the provider"`
}

// HealthOutput defines the output for the Health operation
type HealthOutput struct {
	Status int
	Body   responses.HealthResponse
}

// Health handles the GET /health endpoint
func (h *CatalogHandler) Health(ctx context.Context, input *HealthInput) (*HealthOutput, error) {
	out := &HealthOutput{
		Status: http.StatusOK,
		Body:   responses.HealthResponse{Status: "ok", Time: time.Now().UTC()},
	}
	if !input.Deep || len(h.checks) == 0 {
		return out, nil
	}

	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	out.Body.Checks = make(map[string]string, len(h.checks))
	for _, check := range h.checks {
		if err := check.Check(ctx); err != nil {
			out.Body.Checks[check.Name] = err.Error()
			out.Body.Status = "degraded"
			out.Status = http.StatusServiceUnavailable
			continue
		}
		out.Body.Checks[check.Name] = "ok"
	}
	return out, nil
}

// CatalogOutput defines the output for the GetCatalog operation
type CatalogOutput struct {
	Body responses.CatalogResponse
}

// GetCatalog handles the GET /catalog endpoint
func (h *CatalogHandler) GetCatalog(ctx context.Context, input *struct{}) (*CatalogOutput, error) {
	return &CatalogOutput{Body: *mappers.ToCatalogResponse(h.defaultModel)}, nil
}
