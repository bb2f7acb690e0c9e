package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ai-tutor-service/internal/core/domain"
	"ai-tutor-service/internal/testutil"
)

func newTestGamificationService() (*GamificationService, *testutil.MockAchievementRepo, *testutil.MockUserRepo, *testutil.MockStudySessionRepo) {
	achievementRepo := new(testutil.MockAchievementRepo)
	userRepo := new(testutil.MockUserRepo)
	sessionRepo := new(testutil.MockStudySessionRepo)
	svc := NewGamificationService(achievementRepo, new(testutil.MockChallengeRepo), userRepo, sessionRepo)
	return svc, achievementRepo, userRepo, sessionRepo
}

func TestGamificationService_AwardByName(t *testing.T) {
	svc, achievementRepo, userRepo, _ := newTestGamificationService()

	userID := uuid.New()
	badge := &domain.Achievement{ID: uuid.New(), Name: "First Steps", Points: 10}

	achievementRepo.On("GetByName", mock.Anything, "First Steps").Return(badge, nil)
	achievementRepo.On("Award", mock.Anything, mock.AnythingOfType("*domain.UserAchievement")).Return(nil)
	userRepo.On("AddPoints", mock.Anything, userID, 10).Return(nil)

	err := svc.AwardByName(context.Background(), userID, "First Steps")
	assert.NoError(t, err)
	achievementRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func TestGamificationService_AwardByName_UnknownName(t *testing.T) {
	svc, achievementRepo, _, _ := newTestGamificationService()

	achievementRepo.On("GetByName", mock.Anything, "No Such Badge").Return(nil, domain.ErrAchievementNotFound)

	err := svc.AwardByName(context.Background(), uuid.New(), "No Such Badge")
	assert.NoError(t, err)
}

func TestGamificationService_AwardByName_AlreadyHeld(t *testing.T) {
	svc, achievementRepo, userRepo, _ := newTestGamificationService()

	badge := &domain.Achievement{ID: uuid.New(), Name: "First Steps", Points: 10}
	achievementRepo.On("GetByName", mock.Anything, "First Steps").Return(badge, nil)
	achievementRepo.On("Award", mock.Anything, mock.AnythingOfType("*domain.UserAchievement")).Return(domain.ErrAchievementConflict)

	err := svc.AwardByName(context.Background(), uuid.New(), "First Steps")
	assert.NoError(t, err)
	// No points are granted twice.
	userRepo.AssertNotCalled(t, "AddPoints", mock.Anything, mock.Anything, mock.Anything)
}

func TestGamificationService_EvaluateStreak_AwardsEverySatisfiedTier(t *testing.T) {
	svc, achievementRepo, userRepo, _ := newTestGamificationService()

	userID := uuid.New()
	for _, name := range []string{"3-Day Streak", "7-Day Streak"} {
		badge := &domain.Achievement{ID: uuid.New(), Name: name, Points: 15}
		achievementRepo.On("GetByName", mock.Anything, name).Return(badge, nil)
	}
	achievementRepo.On("Award", mock.Anything, mock.AnythingOfType("*domain.UserAchievement")).Return(nil)
	userRepo.On("AddPoints", mock.Anything, userID, 15).Return(nil)

	err := svc.EvaluateStreak(context.Background(), userID, 10)
	assert.NoError(t, err)
	achievementRepo.AssertNumberOfCalls(t, "Award", 2)
	achievementRepo.AssertNotCalled(t, "GetByName", mock.Anything, "30-Day Streak")
}

func TestGamificationService_EvaluateStudyTime(t *testing.T) {
	svc, achievementRepo, userRepo, sessionRepo := newTestGamificationService()

	userID := uuid.New()
	sessionRepo.On("TotalDuration", mock.Anything, userID).Return(90*time.Minute, nil)

	badge := &domain.Achievement{ID: uuid.New(), Name: "1 Hour of Learning", Points: 20}
	achievementRepo.On("GetByName", mock.Anything, "1 Hour of Learning").Return(badge, nil)
	achievementRepo.On("Award", mock.Anything, mock.AnythingOfType("*domain.UserAchievement")).Return(nil)
	userRepo.On("AddPoints", mock.Anything, userID, 20).Return(nil)

	err := svc.EvaluateStudyTime(context.Background(), userID)
	assert.NoError(t, err)
	achievementRepo.AssertNumberOfCalls(t, "Award", 1)
}

func TestGamificationService_EvaluateStudyTime_BelowFirstTier(t *testing.T) {
	svc, achievementRepo, _, sessionRepo := newTestGamificationService()

	userID := uuid.New()
	sessionRepo.On("TotalDuration", mock.Anything, userID).Return(30*time.Minute, nil)

	err := svc.EvaluateStudyTime(context.Background(), userID)
	assert.NoError(t, err)
	achievementRepo.AssertNotCalled(t, "GetByName", mock.Anything, mock.Anything)
}
