// ABOUTME: Session service keeps each user's topic list between form interactions
// ABOUTME: Sessions are JSON documents in the cache, one key per session, never shared

package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"seo-content-api/core/domain"
	coreerrors "seo-content-api/core/errors"
	"seo-content-api/core/interfaces"
)

const keyPrefix = "session:"

// SessionService handles topic list sessions
type SessionService struct {
	deps interfaces.Dependencies
	ttl  time.Duration

	// serialises read-modify-write of a session within this process
	mu sync.Mutex
}

// NewSessionService creates a new session service; ttl bounds idle sessions
func NewSessionService(deps interfaces.Dependencies, ttl time.Duration) *SessionService {
	return &SessionService{
		deps: deps,
		ttl:  ttl,
	}
}

// CreateSession starts a session with the initial blank topic slots
func (s *SessionService) CreateSession(ctx context.Context) (*domain.Session, error) {
	sess := domain.NewSession(s.ttl)
	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}
	s.deps.Logger.Debug("Session created", map[string]interface{}{
		"session_id": sess.ID,
	})
	return sess, nil
}

// GetSession retrieves a session by ID
func (s *SessionService) GetSession(ctx context.Context, id string) (*domain.Session, error) {
	if id == "" {
		return nil, coreerrors.NewValidationError("session_id", "cannot be empty")
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, coreerrors.NewValidationError("session_id", "invalid format")
	}

	data, err := s.deps.Cache.Get(ctx, keyPrefix+id)
	if err != nil {
		if errors.Is(err, interfaces.ErrCacheMiss) {
			return nil, &coreerrors.NotFoundError{Resource: "session", ID: id}
		}
		return nil, coreerrors.WrapError(err, "load session")
	}

	var sess domain.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, coreerrors.WrapError(err, "decode session")
	}

	if sess.IsExpired() {
		return nil, &coreerrors.NotFoundError{Resource: "session", ID: id}
	}

	return &sess, nil
}

// AddTopic appends a topic slot to the session
func (s *SessionService) AddTopic(ctx context.Context, id, text string) (*domain.Session, error) {
	return s.update(ctx, id, func(sess *domain.Session) error {
		sess.AddTopic(text)
		return nil
	})
}

// EditTopic replaces the topic at index
func (s *SessionService) EditTopic(ctx context.Context, id string, index int, text string) (*domain.Session, error) {
	return s.update(ctx, id, func(sess *domain.Session) error {
		if err := sess.EditTopic(index, text); err != nil {
			return coreerrors.NewValidationError("index", err.Error())
		}
		return nil
	})
}

// Topics returns the non-blank topic snapshot used for generation
func (s *SessionService) Topics(ctx context.Context, id string) ([]string, error) {
	sess, err := s.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	return sess.Snapshot(), nil
}

func (s *SessionService) update(ctx context.Context, id string, mutate func(*domain.Session) error) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := mutate(sess); err != nil {
		return nil, err
	}
	if s.ttl > 0 {
		expires := time.Now().Add(s.ttl)
		sess.ExpiresAt = &expires
	}
	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *SessionService) save(ctx context.Context, sess *domain.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.deps.Cache.Set(ctx, keyPrefix+sess.ID, data, s.ttl); err != nil {
		s.deps.Logger.Error("Failed to store session", map[string]interface{}{
			"session_id": sess.ID,
			"error":      err.Error(),
		})
		return coreerrors.WrapError(err, "store session")
	}
	return nil
}
