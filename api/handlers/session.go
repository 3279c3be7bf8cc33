// ABOUTME: Session handlers for the Huma API
// ABOUTME: Manage the growable topic list of a form session

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"seo-content-api/api/dto/mappers"
	"seo-content-api/api/dto/requests"
	"seo-content-api/api/dto/responses"
	"seo-content-api/core/domain"
)

// SessionService interface defines the methods needed from the session service
type SessionService interface {
	CreateSession(ctx context.Context) (*domain.Session, error)
	GetSession(ctx context.Context, id string) (*domain.Session, error)
	AddTopic(ctx context.Context, id, text string) (*domain.Session, error)
	EditTopic(ctx context.Context, id string, index int, text string) (*domain.Session, error)
}

// SessionHandler handles session-related HTTP requests
type SessionHandler struct {
	service SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(service SessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

// RegisterRoutes registers all session-related routes
func (h *SessionHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "createSession",
		Method:        http.MethodPost,
		Path:          "/sessions",
		Summary:       "Create a form session",
		Description:   "Starts a session with three blank topic slots",
		Tags:          []string{"Sessions"},
		DefaultStatus: http.StatusCreated,
	}, h.CreateSession)

	huma.Register(api, huma.Operation{
		OperationID: "getSession",
		Method:      http.MethodGet,
		Path:        "/sessions/{id}",
		Summary:     "Get a form session",
		Tags:        []string{"Sessions"},
	}, h.GetSession)

	huma.Register(api, huma.Operation{
		OperationID: "addTopic",
		Method:      http.MethodPost,
		Path:        "/sessions/{id}/topics",
		Summary:     "Add a topic slot",
		Tags:        []string{"Sessions"},
	}, h.AddTopic)

	huma.Register(api, huma.Operation{
		OperationID: "editTopic",
		Method:      http.MethodPut,
		Path:        "/sessions/{id}/topics/{index}",
		Summary:     "Edit a topic slot",
		Tags:        []string{"Sessions"},
	}, h.EditTopic)
}

// SessionOutput defines the output for all session operations
type SessionOutput struct {
	Body responses.SessionResponse
}

// CreateSession handles the POST /sessions endpoint
func (h *SessionHandler) CreateSession(ctx context.Context, input *struct{}) (*SessionOutput, error) {
	sess, err := h.service.CreateSession(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &SessionOutput{Body: *mappers.ToSessionResponse(sess)}, nil
}

// SessionIDInput identifies a session
type SessionIDInput struct {
	ID string `path:"id" doc:"Session ID"`
}

// GetSession handles the GET /sessions/{id} endpoint
func (h *SessionHandler) GetSession(ctx context.Context, input *SessionIDInput) (*SessionOutput, error) {
	sess, err := h.service.GetSession(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &SessionOutput{Body: *mappers.ToSessionResponse(sess)}, nil
}

// AddTopicInput defines the input for the AddTopic operation
type AddTopicInput struct {
	ID   string                   `path:"id" doc:"Session ID"`
	Body requests.AddTopicRequest `json:"body"`
}

// AddTopic handles the POST /sessions/{id}/topics endpoint
func (h *SessionHandler) AddTopic(ctx context.Context, input *AddTopicInput) (*SessionOutput, error) {
	sess, err := h.service.AddTopic(ctx, input.ID, input.Body.Text)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &SessionOutput{Body: *mappers.ToSessionResponse(sess)}, nil
}

// EditTopicInput defines the input for the EditTopic operation
type EditTopicInput struct {
	ID    string                    `path:"id" doc:"Session ID"`
	Index int                       `path:"index" minimum:"0" doc:"Zero-based topic slot"`
	Body  requests.EditTopicRequest `json:"body"`
}

// EditTopic handles the PUT /sessions/{id}/topics/{index} endpoint
func (h *SessionHandler) EditTopic(ctx context.Context, input *EditTopicInput) (*SessionOutput, error) {
	sess, err := h.service.EditTopic(ctx, input.ID, input.Index, input.Body.Text)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &SessionOutput{Body: *mappers.ToSessionResponse(sess)}, nil
}
