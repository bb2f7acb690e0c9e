package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ai-tutor-service/internal/core/domain"
	ports "ai-tutor-service/internal/core/ports/output"
	"ai-tutor-service/internal/testutil"
)

func TestDashboardService_Overview(t *testing.T) {
	userRepo := new(testutil.MockUserRepo)
	courseRepo := new(testutil.MockCourseRepo)
	enrollmentRepo := new(testutil.MockEnrollmentRepo)
	challengeRepo := new(testutil.MockChallengeRepo)
	achievementRepo := new(testutil.MockAchievementRepo)
	sessionRepo := new(testutil.MockStudySessionRepo)
	svc := NewDashboardService(userRepo, courseRepo, enrollmentRepo, challengeRepo, achievementRepo, sessionRepo, 30)

	userID := uuid.New()
	user := &domain.User{ID: userID, EducationLevel: domain.EducationCollege}

	userRepo.On("GetByID", mock.Anything, userID).Return(user, nil)
	courseRepo.On("List", mock.Anything, ports.CourseFilter{EducationLevel: domain.EducationCollege, Limit: recommendedCourseLimit}).
		Return([]*domain.Course{{ID: uuid.New()}}, 1, nil)
	enrollmentRepo.On("ListByUser", mock.Anything, userID).Return([]*domain.Enrollment{{ID: uuid.New()}}, nil)
	challengeRepo.On("ListActive", mock.Anything, mock.AnythingOfType("time.Time")).Return([]*domain.Challenge{}, nil)
	achievementRepo.On("ListByUser", mock.Anything, userID).Return([]*domain.UserAchievement{}, nil)
	sessionRepo.On("TotalDurationSince", mock.Anything, userID, mock.AnythingOfType("time.Time")).Return(45*time.Minute, nil)

	dashboard, err := svc.Overview(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, user, dashboard.User)
	assert.Len(t, dashboard.RecommendedCourses, 1)
	assert.Len(t, dashboard.Enrollments, 1)
	assert.Equal(t, 45, dashboard.StudyMinutesToday)
	assert.Equal(t, 30, dashboard.DailyGoalMinutes)
}

func TestDashboardService_Overview_UserNotFound(t *testing.T) {
	userRepo := new(testutil.MockUserRepo)
	svc := NewDashboardService(userRepo, new(testutil.MockCourseRepo), new(testutil.MockEnrollmentRepo),
		new(testutil.MockChallengeRepo), new(testutil.MockAchievementRepo), new(testutil.MockStudySessionRepo), 30)

	userID := uuid.New()
	userRepo.On("GetByID", mock.Anything, userID).Return(nil, domain.ErrUserNotFound)

	_, err := svc.Overview(context.Background(), userID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
