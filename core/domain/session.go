// ABOUTME: Session domain model holds the growable topic list of one form user
// ABOUTME: The generation core only ever receives an immutable snapshot of the topics

package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// InitialTopicSlots is the number of blank topic fields a new session starts with
const InitialTopicSlots = 3

// ErrTopicIndex is returned when editing a topic slot that does not exist
var ErrTopicIndex = errors.New("topic index out of range")

// Session is the per-user form state that survives between interactions
type Session struct {
	// ID is the unique identifier (UUID) for the session
	ID string `json:"id"`

	// Topics contains every topic slot, including blank ones
	Topics []string `json:"topics"`

	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// NewSession creates a session with the initial blank topic slots
func NewSession(ttl time.Duration) *Session {
	now := time.Now()
	s := &Session{
		ID:        uuid.New().String(),
		Topics:    make([]string, InitialTopicSlots),
		CreatedAt: now,
	}
	if ttl > 0 {
		expires := now.Add(ttl)
		s.ExpiresAt = &expires
	}
	return s
}

// AddTopic appends a topic slot; blank text mirrors the "+ Add Topic" button
func (s *Session) AddTopic(text string) {
	s.Topics = append(s.Topics, text)
}

// EditTopic replaces the topic at index
func (s *Session) EditTopic(index int, text string) error {
	if index < 0 || index >= len(s.Topics) {
		return fmt.Errorf("%w: %d (have %d)", ErrTopicIndex, index, len(s.Topics))
	}
	s.Topics[index] = text
	return nil
}

// Snapshot returns the non-blank topics in order, detached from the session
func (s *Session) Snapshot() []string {
	return NonEmptyTopics(s.Topics)
}

// IsExpired checks if the session has expired
func (s *Session) IsExpired() bool {
	if s.ExpiresAt == nil {
		return false
	}
	return time.Now().After(*s.ExpiresAt)
}
