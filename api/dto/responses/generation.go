// ABOUTME: Response DTOs for generation, prompt preview and parse endpoints
// ABOUTME: Title and meta description carry "Not Found" when missing, plus explicit found flags

package responses

import "time"

// HeadingResponse is one outline entry
type HeadingResponse struct {
	Level int    `json:"level" doc:"Heading level, 2 to 4"`
	Text  string `json:"text"`
}

// UsageResponse reports provider token usage
type UsageResponse struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ContentResponse is the post-processed view of generated text
type ContentResponse struct {
	PageTitle       string            `json:"page_title"`
	MetaDescription string            `json:"meta_description"`
	TitleFound      bool              `json:"title_found"`
	MetaFound       bool              `json:"meta_description_found"`
	BodyText        string            `json:"body_text"`
	WordCount       int               `json:"word_count"`
	HTML            string            `json:"html"`
	Outline         []HeadingResponse `json:"outline"`
}

// GenerationResponse is returned by POST /generate and GET /generations/{id}
type GenerationResponse struct {
	ID          string `json:"id"`
	Model       string `json:"model"`
	WordTarget  int    `json:"word_target"`
	DownloadURL string `json:"download_url"`

	ContentResponse

	Usage     UsageResponse `json:"usage"`
	CreatedAt time.Time     `json:"created_at"`
}

// PromptResponse is returned by POST /prompt
type PromptResponse struct {
	Prompt     string   `json:"prompt"`
	Brand      string   `json:"brand"`
	Model      string   `json:"model"`
	WordTarget int      `json:"word_target"`
	Topics     []string `json:"topics"`
}
