package responses

import "time"

// BrandResponse is one brand tone option
type BrandResponse struct {
	Name string `json:"name"`
	Tone string `json:"tone"`
}

// LengthResponse is one length option
type LengthResponse struct {
	Label string `json:"label"`
	Words int    `json:"words"`
}

// CatalogResponse lists the form's fixed choices
type CatalogResponse struct {
	Brands       []BrandResponse  `json:"brands"`
	Lengths      []LengthResponse `json:"lengths"`
	Models       []string         `json:"models"`
	DefaultModel string           `json:"default_model"`
}

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status string            `json:"status"`
	Time   time.Time         `json:"time"`
	Checks map[string]string `json:"checks,omitempty" doc:"Dependency results, present when deep=true"`
}
