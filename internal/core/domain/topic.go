package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Topic is a unit of study inside a course. VideoLinks is an ordered list of
// reference video URLs stored as jsonb.
type Topic struct {
	ID          uuid.UUID `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	CourseID    uuid.UUID `json:"course_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	VideoLinks  []string  `json:"video_links"`
}

// NewTopic creates a new Topic under a course
func NewTopic(courseID uuid.UUID, name, description string, videoLinks []string) (*Topic, error) {
	if courseID == uuid.Nil {
		return nil, ErrCourseNotFound
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidTopicName
	}

	now := time.Now().UTC()
	return &Topic{
		ID:          uuid.New(),
		CreatedAt:   now,
		UpdatedAt:   now,
		CourseID:    courseID,
		Name:        strings.TrimSpace(name),
		Description: description,
		VideoLinks:  videoLinks,
	}, nil
}
