package services

import (
	"context"

	"github.com/google/uuid"

	"ai-tutor-service/internal/core/domain"
	output "ai-tutor-service/internal/core/ports/output"
)

const defaultCourseLimit = 20

// CourseService handles the course catalog
type CourseService struct {
	courseRepo output.CourseRepository
	topicRepo  output.TopicRepository
}

// NewCourseService creates a new course service
func NewCourseService(courseRepo output.CourseRepository, topicRepo output.TopicRepository) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
		topicRepo:  topicRepo,
	}
}

// CreateCourseRequest contains parameters for creating a course
type CreateCourseRequest struct {
	Name           string
	Description    string
	Subject        string
	EducationLevel domain.EducationLevel
	Difficulty     domain.Difficulty
}

// Create creates a new course
func (s *CourseService) Create(ctx context.Context, req CreateCourseRequest) (*domain.Course, error) {
	course, err := domain.NewCourse(req.Name, req.Description, req.Subject, req.EducationLevel, req.Difficulty)
	if err != nil {
		return nil, err
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// Get retrieves a course with its topics
func (s *CourseService) Get(ctx context.Context, id uuid.UUID) (*domain.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	topics, err := s.topicRepo.ListByCourse(ctx, course.ID)
	if err != nil {
		return nil, err
	}
	course.Topics = topics

	return course, nil
}

// List lists courses matching the filter
func (s *CourseService) List(ctx context.Context, filter output.CourseFilter) ([]*domain.Course, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultCourseLimit
	}
	return s.courseRepo.List(ctx, filter)
}

// UpdateCourseRequest contains optional course fields to change
type UpdateCourseRequest struct {
	Name           *string
	Description    *string
	Subject        *string
	EducationLevel *domain.EducationLevel
	Difficulty     *domain.Difficulty
}

// Update applies a partial update to a course
func (s *CourseService) Update(ctx context.Context, id uuid.UUID, req UpdateCourseRequest) (*domain.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, domain.ErrInvalidCourseName
		}
		course.Name = *req.Name
	}
	if req.Description != nil {
		course.Description = *req.Description
	}
	if req.Subject != nil {
		course.Subject = *req.Subject
	}
	if req.EducationLevel != nil {
		course.EducationLevel = *req.EducationLevel
	}
	if req.Difficulty != nil {
		if err := domain.ValidateDifficulty(*req.Difficulty); err != nil {
			return nil, err
		}
		course.Difficulty = *req.Difficulty
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// Delete removes a course and its topics
func (s *CourseService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.courseRepo.Delete(ctx, id)
}
