package output

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ai-tutor-service/internal/core/domain"
)

// CourseFilter narrows course listings.
type CourseFilter struct {
	EducationLevel domain.EducationLevel
	Subject        string
	Difficulty     domain.Difficulty
	Limit          int
	Offset         int
}

// UserRepository persists accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	AddPoints(ctx context.Context, id uuid.UUID, points int) error
}

// CourseRepository persists the course catalog.
type CourseRepository interface {
	Create(ctx context.Context, course *domain.Course) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Course, error)
	List(ctx context.Context, filter CourseFilter) ([]*domain.Course, int, error)
	Update(ctx context.Context, course *domain.Course) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TopicRepository persists topics under courses.
type TopicRepository interface {
	Create(ctx context.Context, topic *domain.Topic) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error)
	ListByCourse(ctx context.Context, courseID uuid.UUID) ([]*domain.Topic, error)
	Update(ctx context.Context, topic *domain.Topic) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// EnrollmentRepository persists user-course memberships.
type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *domain.Enrollment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Enrollment, error)
	GetByUserAndCourse(ctx context.Context, userID, courseID uuid.UUID) (*domain.Enrollment, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Enrollment, error)
	Update(ctx context.Context, enrollment *domain.Enrollment) error
}

// StudySessionRepository persists study sessions.
type StudySessionRepository interface {
	Create(ctx context.Context, session *domain.StudySession) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.StudySession, error)
	Update(ctx context.Context, session *domain.StudySession) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.StudySession, error)
	// TotalDurationSince sums ended-session durations for a user with
	// started_at >= since.
	TotalDurationSince(ctx context.Context, userID uuid.UUID, since time.Time) (time.Duration, error)
	// TotalDuration sums all ended-session durations for a user.
	TotalDuration(ctx context.Context, userID uuid.UUID) (time.Duration, error)
}
