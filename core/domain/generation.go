// ABOUTME: Generation domain models: the form inputs, the provider output and the derived content
// ABOUTME: Requests are immutable once built; parsed content and HTML are derived from raw text

package domain

import (
	"strings"
	"time"
)

const (
	// NotFoundPlaceholder is reported when the generated text has no title or meta description line
	NotFoundPlaceholder = "Not Found"

	// DownloadFilename is the attachment name offered for the rendered HTML
	DownloadFilename = "generated_content.html"

	// DownloadMediaType is the media type of the rendered HTML download
	DownloadMediaType = "text/html"
)

// GenerationRequest carries everything the prompt builder needs.
// Topics holds only non-empty entries in the order the user entered them.
type GenerationRequest struct {
	Tone              string
	Category          string
	Brand             string
	PrimaryKeyword    string
	SecondaryKeywords string
	WordTarget        int
	Topics            []string
	Model             string
}

// NewGenerationRequest builds a request, dropping blank topics and copying the slice
// so later edits to the caller's topic list cannot leak in.
func NewGenerationRequest(tone, category, brand, primary, secondary string, wordTarget int, topics []string, model string) GenerationRequest {
	return GenerationRequest{
		Tone:              tone,
		Category:          category,
		Brand:             brand,
		PrimaryKeyword:    primary,
		SecondaryKeywords: secondary,
		WordTarget:        wordTarget,
		Topics:            NonEmptyTopics(topics),
		Model:             model,
	}
}

// NonEmptyTopics returns the trimmed, non-blank topics in order
func NonEmptyTopics(topics []string) []string {
	out := make([]string, 0, len(topics))
	for _, t := range topics {
		if trimmed := strings.TrimSpace(t); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Usage tracks provider token usage
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// GenerationResult is the unmodified provider output
type GenerationResult struct {
	RawText string
	Model   string
	Usage   Usage
}

// ParsedContent is derived from a GenerationResult and never mutated afterwards
type ParsedContent struct {
	PageTitle       string
	MetaDescription string
	BodyText        string
	WordCount       int
}

// HasTitle reports whether a title line was found
func (p ParsedContent) HasTitle() bool {
	return p.PageTitle != NotFoundPlaceholder
}

// HasMetaDescription reports whether a meta description line was found
func (p ParsedContent) HasMetaDescription() bool {
	return p.MetaDescription != NotFoundPlaceholder
}

// HTMLDocument is the rendered download
type HTMLDocument struct {
	Content   string
	Filename  string
	MediaType string
}

// NewHTMLDocument wraps rendered HTML with its download metadata
func NewHTMLDocument(content string) HTMLDocument {
	return HTMLDocument{
		Content:   content,
		Filename:  DownloadFilename,
		MediaType: DownloadMediaType,
	}
}

// Heading is one entry of a rendered document's outline
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// Generation is a stored generation record
type Generation struct {
	ID        string            `json:"id"`
	Request   GenerationRequest `json:"request"`
	Prompt    string            `json:"prompt"`
	Result    GenerationResult  `json:"result"`
	Parsed    ParsedContent     `json:"parsed"`
	Document  HTMLDocument      `json:"document"`
	Outline   []Heading         `json:"outline"`
	CreatedAt time.Time         `json:"created_at"`
}
