// ABOUTME: OpenAI chat-completions client implementing the TextGenerator contract
// ABOUTME: Sends a single user message and returns the first choice unmodified

package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"seo-content-api/core/domain"
	"seo-content-api/core/errors"
	"seo-content-api/core/interfaces"
)

const (
	// DefaultBaseURL is the public OpenAI API root
	DefaultBaseURL = "https://api.openai.com/v1"

	apiName = "openai"

	// maxErrorBody caps how much of an error response is kept in the message
	maxErrorBody = 1024
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message      chatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
	Usage domain.Usage `json:"usage"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Client calls the chat completions endpoint
type Client struct {
	http    interfaces.HTTPClient
	baseURL string
	apiKey  string
}

// NewClient creates a client. apiKey is the server-side default and may be empty
// when every request supplies its own key.
func NewClient(httpClient interfaces.HTTPClient, baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		http:    httpClient,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

// HasKey reports whether a server-side API key is configured
func (c *Client) HasKey() bool {
	return c.apiKey != ""
}

// Generate sends prompt as one user message.
// A request-supplied apiKey takes precedence over the configured key.
func (c *Client) Generate(ctx context.Context, prompt, model, apiKey string) (*domain.GenerationResult, error) {
	key := apiKey
	if key == "" {
		key = c.apiKey
	}
	if key == "" {
		return nil, errors.NewValidationError("api_key", "an API key is required")
	}

	body, err := json.Marshal(chatRequest{
		Model:    model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return nil, errors.WrapError(err, "encode chat request")
	}

	resp, err := c.http.Post(ctx, c.baseURL+"/chat/completions", bytes.NewReader(body), map[string]string{
		"Authorization": "Bearer " + key,
	})
	if err != nil {
		return nil, &errors.ExternalAPIError{
			API:     apiName,
			Message: "request failed",
			Err:     err,
		}
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, &errors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			API:        apiName,
			Message:    errorMessage(resp.Body()),
		}
	}

	var decoded chatResponse
	if err := json.NewDecoder(resp.Body()).Decode(&decoded); err != nil {
		return nil, &errors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			API:        apiName,
			Message:    "malformed response",
			Err:        err,
		}
	}

	if len(decoded.Choices) == 0 {
		return nil, &errors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			API:        apiName,
			Message:    "response contained no choices",
		}
	}

	usedModel := decoded.Model
	if usedModel == "" {
		usedModel = model
	}

	return &domain.GenerationResult{
		RawText: decoded.Choices[0].Message.Content,
		Model:   usedModel,
		Usage:   decoded.Usage,
	}, nil
}

// Ping lists models with the configured key to confirm the provider is reachable
// and accepts the key. Without a configured key there is nothing to check.
func (c *Client) Ping(ctx context.Context) error {
	if c.apiKey == "" {
		return nil
	}

	resp, err := c.http.Get(ctx, c.baseURL+"/models", map[string]string{
		"Authorization": "Bearer " + c.apiKey,
	})
	if err != nil {
		return &errors.ExternalAPIError{
			API:     apiName,
			Message: "request failed",
			Err:     err,
		}
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return &errors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			API:        apiName,
			Message:    errorMessage(resp.Body()),
		}
	}
	return nil
}

// errorMessage pulls error.message out of an OpenAI error body, falling back to the raw text
func errorMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return "provider returned an error"
	}

	var decoded errorResponse
	if json.Unmarshal(raw, &decoded) == nil && decoded.Error.Message != "" {
		return decoded.Error.Message
	}
	return fmt.Sprintf("unexpected response: %s", strings.TrimSpace(string(raw)))
}
