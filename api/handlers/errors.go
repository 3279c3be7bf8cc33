// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	coreerrors "seo-content-api/core/errors"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	var validationErr *coreerrors.ValidationError
	if errors.As(err, &validationErr) {
		return huma.Error400BadRequest(err.Error(), &huma.ErrorDetail{
			Location: fieldLocation(validationErr.Field),
			Message:  validationErr.Message,
		})
	}

	if coreerrors.IsNotFound(err) {
		return huma.Error404NotFound(err.Error())
	}

	if apiErr, ok := coreerrors.AsExternalAPI(err); ok {
		// The provider's own message is passed through so the user can act on it
		switch {
		case apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden:
			return huma.Error400BadRequest("Text provider rejected the API key: " + apiErr.Message)
		case apiErr.StatusCode == http.StatusTooManyRequests:
			return huma.Error429TooManyRequests("Rate limited by text provider: " + apiErr.Message)
		case apiErr.StatusCode >= 400 && apiErr.StatusCode < 500:
			return huma.Error400BadRequest("Text provider rejected the request: " + apiErr.Message)
		default:
			return huma.Error502BadGateway("Text provider error: " + apiErr.Message)
		}
	}

	// Default to internal server error for unknown errors
	return huma.Error500InternalServerError("Internal server error")
}

// fieldLocation maps a core field name to its place in the HTTP request
func fieldLocation(field string) string {
	switch field {
	case "id", "index":
		return "path." + field
	default:
		return "body." + field
	}
}
