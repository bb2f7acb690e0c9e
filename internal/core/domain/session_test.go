package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestStudySessionEnd_PointsPerMinute(t *testing.T) {
	session, err := NewStudySession(uuid.New(), uuid.New())
	assert.NoError(t, err)

	session.StartedAt = time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	points, err := session.End(session.StartedAt.Add(12*time.Minute + 30*time.Second))
	assert.NoError(t, err)
	assert.Equal(t, 12, points)
	assert.Equal(t, 750, session.DurationSeconds)
}

func TestStudySessionEnd_Capped(t *testing.T) {
	session, _ := NewStudySession(uuid.New(), uuid.New())
	session.StartedAt = time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

	points, err := session.End(session.StartedAt.Add(2 * time.Hour))
	assert.NoError(t, err)
	assert.Equal(t, SessionPointsCap, points)
}

func TestStudySessionEnd_AlreadyEnded(t *testing.T) {
	session, _ := NewStudySession(uuid.New(), uuid.New())
	_, err := session.End(time.Now())
	assert.NoError(t, err)

	_, err = session.End(time.Now())
	assert.ErrorIs(t, err, ErrSessionAlreadyEnded)
}

func TestStudySessionEnd_ClockSkew(t *testing.T) {
	session, _ := NewStudySession(uuid.New(), uuid.New())

	points, err := session.End(session.StartedAt.Add(-time.Minute))
	assert.NoError(t, err)
	assert.Equal(t, 0, points)
	assert.Equal(t, 0, session.DurationSeconds)
}
