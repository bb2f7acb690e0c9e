package domain

import (
	"time"

	"github.com/google/uuid"
)

// EnrollmentPoints is awarded once when a student joins a course.
const EnrollmentPoints = 10

// Enrollment links a user to a course. One row per (user, course).
type Enrollment struct {
	ID         uuid.UUID `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	UserID     uuid.UUID `json:"user_id"`
	CourseID   uuid.UUID `json:"course_id"`
	EnrolledAt time.Time `json:"enrolled_at"`
	Completed  bool      `json:"completed"`

	// Computed fields
	Course *Course `json:"course,omitempty"`
}

// NewEnrollment creates a new Enrollment
func NewEnrollment(userID, courseID uuid.UUID) (*Enrollment, error) {
	if userID == uuid.Nil {
		return nil, ErrUserNotFound
	}
	if courseID == uuid.Nil {
		return nil, ErrCourseNotFound
	}

	now := time.Now().UTC()
	return &Enrollment{
		ID:         uuid.New(),
		CreatedAt:  now,
		UpdatedAt:  now,
		UserID:     userID,
		CourseID:   courseID,
		EnrolledAt: now,
	}, nil
}
