package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"ai-tutor-service/internal/core/domain"
	output "ai-tutor-service/internal/core/ports/output"
)

// EnrollmentService handles course membership
type EnrollmentService struct {
	enrollmentRepo output.EnrollmentRepository
	courseRepo     output.CourseRepository
	userRepo       output.UserRepository
}

// NewEnrollmentService creates a new enrollment service
func NewEnrollmentService(
	enrollmentRepo output.EnrollmentRepository,
	courseRepo output.CourseRepository,
	userRepo output.UserRepository,
) *EnrollmentService {
	return &EnrollmentService{
		enrollmentRepo: enrollmentRepo,
		courseRepo:     courseRepo,
		userRepo:       userRepo,
	}
}

// Enroll joins the user to a course and awards the enrollment points.
func (s *EnrollmentService) Enroll(ctx context.Context, userID, courseID uuid.UUID) (*domain.Enrollment, error) {
	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		return nil, err
	}

	if _, err := s.enrollmentRepo.GetByUserAndCourse(ctx, userID, courseID); err == nil {
		return nil, domain.ErrAlreadyEnrolled
	} else if !errors.Is(err, domain.ErrEnrollmentNotFound) {
		return nil, err
	}

	enrollment, err := domain.NewEnrollment(userID, courseID)
	if err != nil {
		return nil, err
	}

	if err := s.enrollmentRepo.Create(ctx, enrollment); err != nil {
		return nil, err
	}

	if err := s.userRepo.AddPoints(ctx, userID, domain.EnrollmentPoints); err != nil {
		log.WithError(err).Warn("failed to award enrollment points")
	}

	return enrollment, nil
}

// ListByUser lists the user's enrollments with their courses attached.
func (s *EnrollmentService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Enrollment, error) {
	return s.enrollmentRepo.ListByUser(ctx, userID)
}

// IsEnrolled reports whether the user is enrolled in the course.
func (s *EnrollmentService) IsEnrolled(ctx context.Context, userID, courseID uuid.UUID) (bool, error) {
	_, err := s.enrollmentRepo.GetByUserAndCourse(ctx, userID, courseID)
	if err != nil {
		if errors.Is(err, domain.ErrEnrollmentNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Complete marks the user's enrollment in a course as finished.
func (s *EnrollmentService) Complete(ctx context.Context, userID, courseID uuid.UUID) (*domain.Enrollment, error) {
	enrollment, err := s.enrollmentRepo.GetByUserAndCourse(ctx, userID, courseID)
	if err != nil {
		if errors.Is(err, domain.ErrEnrollmentNotFound) {
			return nil, domain.ErrNotEnrolled
		}
		return nil, err
	}

	enrollment.Completed = true
	if err := s.enrollmentRepo.Update(ctx, enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}
