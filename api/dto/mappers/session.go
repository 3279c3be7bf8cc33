package mappers

import (
	"seo-content-api/api/dto/responses"
	"seo-content-api/core/domain"
)

// ToSessionResponse converts a session to its DTO
func ToSessionResponse(sess *domain.Session) *responses.SessionResponse {
	if sess == nil {
		return nil
	}

	topics := make([]string, len(sess.Topics))
	copy(topics, sess.Topics)

	return &responses.SessionResponse{
		ID:        sess.ID,
		Topics:    topics,
		Snapshot:  sess.Snapshot(),
		CreatedAt: sess.CreatedAt,
		ExpiresAt: sess.ExpiresAt,
	}
}
