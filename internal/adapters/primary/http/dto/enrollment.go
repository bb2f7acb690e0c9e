package dto

import (
	"time"

	"github.com/google/uuid"

	"ai-tutor-service/internal/core/domain"
)

// EnrollmentResponse is the public view of an enrollment
type EnrollmentResponse struct {
	ID         uuid.UUID       `json:"id"`
	CourseID   uuid.UUID       `json:"course_id"`
	EnrolledAt time.Time       `json:"enrolled_at"`
	Completed  bool            `json:"completed"`
	Course     *CourseResponse `json:"course,omitempty"`
}

// ListEnrollmentsResponse wraps an enrollment listing
type ListEnrollmentsResponse struct {
	Items []EnrollmentResponse `json:"items"`
	Total int                  `json:"total"`
}

// ToEnrollmentResponse maps a domain enrollment (and any attached course)
func ToEnrollmentResponse(e *domain.Enrollment) EnrollmentResponse {
	resp := EnrollmentResponse{
		ID:         e.ID,
		CourseID:   e.CourseID,
		EnrolledAt: e.EnrolledAt,
		Completed:  e.Completed,
	}
	if e.Course != nil {
		course := ToCourseResponse(e.Course)
		resp.Course = &course
	}
	return resp
}
