package domain

import (
	"time"

	"github.com/google/uuid"
)

// SessionPointsCap bounds the points earned from a single study session.
// One point per full minute studied, capped at a 30-minute session.
const SessionPointsCap = 30

// StudySession records time a user spends on a topic. Duration and points are
// filled in when the session is ended.
type StudySession struct {
	ID              uuid.UUID  `json:"id"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	UserID          uuid.UUID  `json:"user_id"`
	TopicID         uuid.UUID  `json:"topic_id"`
	StartedAt       time.Time  `json:"started_at"`
	EndedAt         *time.Time `json:"ended_at"`
	DurationSeconds int        `json:"duration_seconds"`
}

// NewStudySession opens a session for a user on a topic
func NewStudySession(userID, topicID uuid.UUID) (*StudySession, error) {
	if userID == uuid.Nil {
		return nil, ErrUserNotFound
	}
	if topicID == uuid.Nil {
		return nil, ErrTopicNotFound
	}

	now := time.Now().UTC()
	return &StudySession{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
		UserID:    userID,
		TopicID:   topicID,
		StartedAt: now,
	}, nil
}

// End closes the session at now and returns the points earned.
func (s *StudySession) End(now time.Time) (int, error) {
	if s.EndedAt != nil {
		return 0, ErrSessionAlreadyEnded
	}

	now = now.UTC()
	s.EndedAt = &now
	s.DurationSeconds = int(now.Sub(s.StartedAt).Seconds())
	if s.DurationSeconds < 0 {
		s.DurationSeconds = 0
	}
	s.UpdatedAt = now

	points := s.DurationSeconds / 60
	if points > SessionPointsCap {
		points = SessionPointsCap
	}
	return points, nil
}
