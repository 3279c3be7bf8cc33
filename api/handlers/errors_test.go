package handlers

import (
	"fmt"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seo-content-api/core/errors"
)

func TestToHumaError(t *testing.T) {
	tests := []struct {
		name           string
		input          error
		expectedStatus int
		expectedInMsg  string
	}{
		{
			name:           "NotFoundError returns 404",
			input:          &errors.NotFoundError{Resource: "generation", ID: "abc"},
			expectedStatus: 404,
			expectedInMsg:  "generation not found: abc",
		},
		{
			name:           "ValidationError returns 400",
			input:          &errors.ValidationError{Field: "primary_keyword", Message: "is required"},
			expectedStatus: 400,
			expectedInMsg:  "primary_keyword",
		},
		{
			name:           "provider 401 is a client error",
			input:          &errors.ExternalAPIError{StatusCode: 401, API: "openai", Message: "Incorrect API key provided"},
			expectedStatus: 400,
			expectedInMsg:  "rejected the API key: Incorrect API key provided",
		},
		{
			name:           "provider 429 returns 429",
			input:          &errors.ExternalAPIError{StatusCode: 429, Message: "quota exceeded"},
			expectedStatus: 429,
			expectedInMsg:  "quota exceeded",
		},
		{
			name:           "provider 404 returns 400",
			input:          &errors.ExternalAPIError{StatusCode: 404, Message: "model not found"},
			expectedStatus: 400,
			expectedInMsg:  "rejected the request: model not found",
		},
		{
			name:           "provider 500 returns 502",
			input:          &errors.ExternalAPIError{StatusCode: 500, Message: "server error"},
			expectedStatus: 502,
			expectedInMsg:  "Text provider error",
		},
		{
			name:           "transport failure returns 502",
			input:          &errors.ExternalAPIError{StatusCode: 0, Message: "request failed"},
			expectedStatus: 502,
			expectedInMsg:  "request failed",
		},
		{
			name:           "wrapped provider error keeps mapping",
			input:          errors.WrapError(&errors.ExternalAPIError{StatusCode: 503, Message: "overloaded"}, "generate content"),
			expectedStatus: 502,
			expectedInMsg:  "overloaded",
		},
		{
			name:           "wrapped NotFoundError returns 404",
			input:          fmt.Errorf("wrapped: %w", &errors.NotFoundError{Resource: "session", ID: "x"}),
			expectedStatus: 404,
			expectedInMsg:  "session not found",
		},
		{
			name:           "unknown error returns 500",
			input:          fmt.Errorf("redis: connection reset"),
			expectedStatus: 500,
			expectedInMsg:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := toHumaError(tt.input)

			humaErr, ok := result.(*huma.ErrorModel)
			require.True(t, ok, "Expected huma.ErrorModel")
			assert.Equal(t, tt.expectedStatus, humaErr.Status)
			assert.Contains(t, humaErr.Detail, tt.expectedInMsg)
		})
	}
}

func TestToHumaError_Nil(t *testing.T) {
	assert.Nil(t, toHumaError(nil))
}

func TestToHumaError_ValidationLocation(t *testing.T) {
	result := toHumaError(&errors.ValidationError{Field: "category", Message: "is required"})

	humaErr := result.(*huma.ErrorModel)
	require.Len(t, humaErr.Errors, 1)
	assert.Equal(t, "body.category", humaErr.Errors[0].Location)
	assert.Equal(t, "is required", humaErr.Errors[0].Message)
}

func TestToHumaError_PathFieldLocation(t *testing.T) {
	result := toHumaError(&errors.ValidationError{Field: "index", Message: "topic index out of range"})

	humaErr := result.(*huma.ErrorModel)
	require.Len(t, humaErr.Errors, 1)
	assert.Equal(t, "path.index", humaErr.Errors[0].Location)
}

func TestToHumaError_InternalDetailsHidden(t *testing.T) {
	result := toHumaError(fmt.Errorf("dial tcp 10.0.0.5:6379: refused"))

	humaErr := result.(*huma.ErrorModel)
	assert.NotContains(t, humaErr.Detail, "10.0.0.5")
}
