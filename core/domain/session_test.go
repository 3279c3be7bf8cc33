package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	s := NewSession(time.Hour)

	_, err := uuid.Parse(s.ID)
	require.NoError(t, err)
	assert.Len(t, s.Topics, InitialTopicSlots)
	assert.Empty(t, s.Snapshot())
	require.NotNil(t, s.ExpiresAt)
	assert.False(t, s.IsExpired())
}

func TestNewSession_NoTTL(t *testing.T) {
	s := NewSession(0)

	assert.Nil(t, s.ExpiresAt)
	assert.False(t, s.IsExpired())
}

func TestSession_AddAndEditTopics(t *testing.T) {
	s := NewSession(0)

	require.NoError(t, s.EditTopic(0, "Shoes"))
	require.NoError(t, s.EditTopic(2, "  Hats "))
	s.AddTopic("")
	s.AddTopic("Belts")

	assert.Len(t, s.Topics, 5)
	assert.Equal(t, []string{"Shoes", "Hats", "Belts"}, s.Snapshot())
}

func TestSession_EditTopic_OutOfRange(t *testing.T) {
	s := NewSession(0)

	for _, idx := range []int{-1, 3, 10} {
		err := s.EditTopic(idx, "x")
		assert.True(t, errors.Is(err, ErrTopicIndex), "index %d", idx)
	}
}

func TestSession_SnapshotIsDetached(t *testing.T) {
	s := NewSession(0)
	require.NoError(t, s.EditTopic(0, "Shoes"))

	snap := s.Snapshot()
	require.NoError(t, s.EditTopic(0, "Bags"))

	assert.Equal(t, []string{"Shoes"}, snap)
}

func TestSession_IsExpired(t *testing.T) {
	past := time.Now().Add(-time.Minute)
	s := &Session{ExpiresAt: &past}

	assert.True(t, s.IsExpired())
}
