package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ai-tutor-service/internal/core/domain"
	"ai-tutor-service/internal/testutil"
)

func TestEnrollmentService_Enroll(t *testing.T) {
	enrollmentRepo := new(testutil.MockEnrollmentRepo)
	courseRepo := new(testutil.MockCourseRepo)
	userRepo := new(testutil.MockUserRepo)
	svc := NewEnrollmentService(enrollmentRepo, courseRepo, userRepo)

	userID := uuid.New()
	courseID := uuid.New()

	courseRepo.On("GetByID", mock.Anything, courseID).Return(&domain.Course{ID: courseID}, nil)
	enrollmentRepo.On("GetByUserAndCourse", mock.Anything, userID, courseID).Return(nil, domain.ErrEnrollmentNotFound)
	enrollmentRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Enrollment")).Return(nil)
	userRepo.On("AddPoints", mock.Anything, userID, domain.EnrollmentPoints).Return(nil)

	enrollment, err := svc.Enroll(context.Background(), userID, courseID)
	assert.NoError(t, err)
	assert.Equal(t, courseID, enrollment.CourseID)
	assert.False(t, enrollment.Completed)
	userRepo.AssertExpectations(t)
}

func TestEnrollmentService_Enroll_AlreadyEnrolled(t *testing.T) {
	enrollmentRepo := new(testutil.MockEnrollmentRepo)
	courseRepo := new(testutil.MockCourseRepo)
	svc := NewEnrollmentService(enrollmentRepo, courseRepo, new(testutil.MockUserRepo))

	userID := uuid.New()
	courseID := uuid.New()

	courseRepo.On("GetByID", mock.Anything, courseID).Return(&domain.Course{ID: courseID}, nil)
	enrollmentRepo.On("GetByUserAndCourse", mock.Anything, userID, courseID).Return(&domain.Enrollment{}, nil)

	_, err := svc.Enroll(context.Background(), userID, courseID)
	assert.ErrorIs(t, err, domain.ErrAlreadyEnrolled)
}

func TestEnrollmentService_Enroll_CourseNotFound(t *testing.T) {
	courseRepo := new(testutil.MockCourseRepo)
	svc := NewEnrollmentService(new(testutil.MockEnrollmentRepo), courseRepo, new(testutil.MockUserRepo))

	courseID := uuid.New()
	courseRepo.On("GetByID", mock.Anything, courseID).Return(nil, domain.ErrCourseNotFound)

	_, err := svc.Enroll(context.Background(), uuid.New(), courseID)
	assert.ErrorIs(t, err, domain.ErrCourseNotFound)
}

func TestEnrollmentService_Complete(t *testing.T) {
	enrollmentRepo := new(testutil.MockEnrollmentRepo)
	svc := NewEnrollmentService(enrollmentRepo, new(testutil.MockCourseRepo), new(testutil.MockUserRepo))

	userID := uuid.New()
	courseID := uuid.New()
	enrollment := &domain.Enrollment{ID: uuid.New(), UserID: userID, CourseID: courseID}

	enrollmentRepo.On("GetByUserAndCourse", mock.Anything, userID, courseID).Return(enrollment, nil)
	enrollmentRepo.On("Update", mock.Anything, enrollment).Return(nil)

	updated, err := svc.Complete(context.Background(), userID, courseID)
	assert.NoError(t, err)
	assert.True(t, updated.Completed)
}

func TestEnrollmentService_Complete_NotEnrolled(t *testing.T) {
	enrollmentRepo := new(testutil.MockEnrollmentRepo)
	svc := NewEnrollmentService(enrollmentRepo, new(testutil.MockCourseRepo), new(testutil.MockUserRepo))

	userID := uuid.New()
	courseID := uuid.New()
	enrollmentRepo.On("GetByUserAndCourse", mock.Anything, userID, courseID).Return(nil, domain.ErrEnrollmentNotFound)

	_, err := svc.Complete(context.Background(), userID, courseID)
	assert.ErrorIs(t, err, domain.ErrNotEnrolled)
}

func TestEnrollmentService_IsEnrolled(t *testing.T) {
	enrollmentRepo := new(testutil.MockEnrollmentRepo)
	svc := NewEnrollmentService(enrollmentRepo, new(testutil.MockCourseRepo), new(testutil.MockUserRepo))

	userID := uuid.New()
	courseID := uuid.New()
	enrollmentRepo.On("GetByUserAndCourse", mock.Anything, userID, courseID).Return(nil, domain.ErrEnrollmentNotFound)

	enrolled, err := svc.IsEnrolled(context.Background(), userID, courseID)
	assert.NoError(t, err)
	assert.False(t, enrolled)
}
