package responses

import "time"

// SessionResponse is the topic list of a form session
type SessionResponse struct {
	ID        string     `json:"id"`
	Topics    []string   `json:"topics" doc:"Every topic slot, including blank ones"`
	Snapshot  []string   `json:"snapshot" doc:"Non-blank topics as they would be sent to generation"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}
