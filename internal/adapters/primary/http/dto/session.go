package dto

import (
	"time"

	"github.com/google/uuid"

	"ai-tutor-service/internal/core/domain"
)

// SessionResponse is the public view of a study session
type SessionResponse struct {
	ID              uuid.UUID  `json:"id"`
	TopicID         uuid.UUID  `json:"topic_id"`
	StartedAt       time.Time  `json:"started_at"`
	EndedAt         *time.Time `json:"ended_at,omitempty"`
	DurationSeconds int        `json:"duration_seconds"`
}

// EndSessionResponse reports the closed session and the points it earned
type EndSessionResponse struct {
	Session      SessionResponse `json:"session"`
	PointsEarned int             `json:"points_earned"`
}

// ListSessionsResponse wraps a session listing
type ListSessionsResponse struct {
	Items []SessionResponse `json:"items"`
	Total int               `json:"total"`
}

// ToSessionResponse maps a domain study session
func ToSessionResponse(s *domain.StudySession) SessionResponse {
	return SessionResponse{
		ID:              s.ID,
		TopicID:         s.TopicID,
		StartedAt:       s.StartedAt,
		EndedAt:         s.EndedAt,
		DurationSeconds: s.DurationSeconds,
	}
}
