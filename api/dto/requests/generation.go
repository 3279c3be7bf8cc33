// ABOUTME: Request DTOs for the generation form endpoints
// ABOUTME: Field presence is checked by the generation service so error order stays fixed

package requests

import "seo-content-api/core/domain"

// GenerateRequest represents the form submission
type GenerateRequest struct {
	// APIKey is the provider key; optional when the server has one configured
	APIKey string `json:"api_key,omitempty" doc:"Provider API key. Optional when the server has a default key"`

	Brand string `json:"brand,omitempty" doc:"Brand whose tone of voice is used"`

	Category string `json:"category,omitempty" maxLength:"200" doc:"Page category (required)"`

	PrimaryKeyword string `json:"primary_keyword,omitempty" maxLength:"200" doc:"Primary keyword (required)"`

	SecondaryKeywords string `json:"secondary_keywords,omitempty" maxLength:"1000" doc:"Secondary keywords, inserted verbatim"`

	// Length is a length option label or its short name
	Length string `json:"length,omitempty" doc:"Length option: Short (~750 words), Medium (~1000 words), Long (~1500 words), or short/medium/long"`

	WordTarget int `json:"word_target,omitempty" minimum:"0" maximum:"10000" doc:"Explicit minimum word count; overrides length"`

	Topics []string `json:"topics,omitempty" maxItems:"50" doc:"Ordered section topics; blank entries are ignored"`

	SessionID string `json:"session_id,omitempty" doc:"Use the topics of this form session instead of topics"`

	Model string `json:"model,omitempty" doc:"Model identifier; defaults to the server default"`
}

// ApplyDefaults sets default values for optional fields
func (r *GenerateRequest) ApplyDefaults() {
	if r.Brand == "" {
		r.Brand = domain.Brands()[0].Name
	}
	if r.Length == "" && r.WordTarget == 0 {
		r.Length = domain.LengthOptions()[0].Label
	}
}

// ParseRequest carries provider text to run through the post-processor
type ParseRequest struct {
	Text string `json:"text" maxLength:"200000" doc:"Raw generated text"`
}
