package mappers

import (
	"seo-content-api/api/dto/responses"
	"seo-content-api/core/domain"
)

// ToCatalogResponse lists the catalogs with the server's default model
func ToCatalogResponse(defaultModel string) *responses.CatalogResponse {
	brands := domain.Brands()
	lengths := domain.LengthOptions()

	resp := &responses.CatalogResponse{
		Brands:       make([]responses.BrandResponse, 0, len(brands)),
		Lengths:      make([]responses.LengthResponse, 0, len(lengths)),
		Models:       domain.Models(),
		DefaultModel: defaultModel,
	}
	for _, b := range brands {
		resp.Brands = append(resp.Brands, responses.BrandResponse{Name: b.Name, Tone: b.Tone})
	}
	for _, l := range lengths {
		resp.Lengths = append(resp.Lengths, responses.LengthResponse{Label: l.Label, Words: l.Words})
	}
	return resp
}
