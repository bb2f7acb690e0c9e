package dto

import (
	"time"

	"github.com/google/uuid"

	"ai-tutor-service/internal/core/domain"
)

// ============================================================================
// Request DTOs
// ============================================================================

// CreateCourseRequest represents a request to create a course
type CreateCourseRequest struct {
	Name           string `json:"name" binding:"required"`
	Description    string `json:"description"`
	Subject        string `json:"subject"`
	EducationLevel string `json:"education_level"`
	Difficulty     string `json:"difficulty" binding:"required"`
}

// UpdateCourseRequest represents a partial course update
type UpdateCourseRequest struct {
	Name           *string `json:"name"`
	Description    *string `json:"description"`
	Subject        *string `json:"subject"`
	EducationLevel *string `json:"education_level"`
	Difficulty     *string `json:"difficulty"`
}

// ============================================================================
// Response DTOs
// ============================================================================

// CourseResponse is the public view of a course
type CourseResponse struct {
	ID             uuid.UUID       `json:"id"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Subject        string          `json:"subject"`
	EducationLevel string          `json:"education_level"`
	Difficulty     string          `json:"difficulty"`
	Topics         []TopicResponse `json:"topics,omitempty"`
}

// ListCoursesResponse wraps a course listing
type ListCoursesResponse struct {
	Items []CourseResponse `json:"items"`
	Total int              `json:"total"`
}

// ToCourseResponse maps a domain course (and any attached topics)
func ToCourseResponse(c *domain.Course) CourseResponse {
	resp := CourseResponse{
		ID:             c.ID,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
		Name:           c.Name,
		Description:    c.Description,
		Subject:        c.Subject,
		EducationLevel: string(c.EducationLevel),
		Difficulty:     string(c.Difficulty),
	}
	for _, t := range c.Topics {
		resp.Topics = append(resp.Topics, ToTopicResponse(t))
	}
	return resp
}
