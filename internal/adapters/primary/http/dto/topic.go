package dto

import (
	"time"

	"github.com/google/uuid"

	"ai-tutor-service/internal/core/domain"
)

// CreateTopicRequest represents a request to create a topic
type CreateTopicRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	VideoLinks  []string `json:"video_links"`
}

// UpdateTopicRequest represents a partial topic update
type UpdateTopicRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	VideoLinks  []string `json:"video_links"`
}

// TopicResponse is the public view of a topic
type TopicResponse struct {
	ID          uuid.UUID `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	CourseID    uuid.UUID `json:"course_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	VideoLinks  []string  `json:"video_links"`
}

// ListTopicsResponse wraps a topic listing
type ListTopicsResponse struct {
	Items []TopicResponse `json:"items"`
	Total int             `json:"total"`
}

// ToTopicResponse maps a domain topic
func ToTopicResponse(t *domain.Topic) TopicResponse {
	return TopicResponse{
		ID:          t.ID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		CourseID:    t.CourseID,
		Name:        t.Name,
		Description: t.Description,
		VideoLinks:  t.VideoLinks,
	}
}
