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

func newTestSessionService() (*SessionService, *testutil.MockStudySessionRepo, *testutil.MockTopicRepo, *testutil.MockUserRepo, *testutil.MockAchievementRepo) {
	sessionRepo := new(testutil.MockStudySessionRepo)
	topicRepo := new(testutil.MockTopicRepo)
	userRepo := new(testutil.MockUserRepo)
	achievementRepo := new(testutil.MockAchievementRepo)
	gamify := NewGamificationService(achievementRepo, new(testutil.MockChallengeRepo), userRepo, sessionRepo)
	svc := NewSessionService(sessionRepo, topicRepo, userRepo, gamify)
	return svc, sessionRepo, topicRepo, userRepo, achievementRepo
}

func TestSessionService_Start(t *testing.T) {
	svc, sessionRepo, topicRepo, _, _ := newTestSessionService()

	userID := uuid.New()
	topicID := uuid.New()
	topicRepo.On("GetByID", mock.Anything, topicID).Return(&domain.Topic{ID: topicID}, nil)
	sessionRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.StudySession")).Return(nil)

	session, err := svc.Start(context.Background(), userID, topicID)
	assert.NoError(t, err)
	assert.Equal(t, userID, session.UserID)
	assert.Nil(t, session.EndedAt)
}

func TestSessionService_Start_TopicNotFound(t *testing.T) {
	svc, _, topicRepo, _, _ := newTestSessionService()

	topicID := uuid.New()
	topicRepo.On("GetByID", mock.Anything, topicID).Return(nil, domain.ErrTopicNotFound)

	_, err := svc.Start(context.Background(), uuid.New(), topicID)
	assert.ErrorIs(t, err, domain.ErrTopicNotFound)
}

func TestSessionService_End(t *testing.T) {
	svc, sessionRepo, _, userRepo, _ := newTestSessionService()

	userID := uuid.New()
	session := &domain.StudySession{
		ID:        uuid.New(),
		UserID:    userID,
		TopicID:   uuid.New(),
		StartedAt: time.Now().UTC().Add(-10 * time.Minute),
	}

	sessionRepo.On("GetByID", mock.Anything, session.ID).Return(session, nil)
	sessionRepo.On("Update", mock.Anything, session).Return(nil)
	userRepo.On("AddPoints", mock.Anything, userID, 10).Return(nil)
	sessionRepo.On("TotalDuration", mock.Anything, userID).Return(10*time.Minute, nil)

	ended, points, err := svc.End(context.Background(), userID, session.ID)
	assert.NoError(t, err)
	assert.Equal(t, 10, points)
	assert.NotNil(t, ended.EndedAt)
	userRepo.AssertExpectations(t)
}

func TestSessionService_End_NotOwner(t *testing.T) {
	svc, sessionRepo, _, _, _ := newTestSessionService()

	session := &domain.StudySession{ID: uuid.New(), UserID: uuid.New(), StartedAt: time.Now()}
	sessionRepo.On("GetByID", mock.Anything, session.ID).Return(session, nil)

	_, _, err := svc.End(context.Background(), uuid.New(), session.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotOwned)
}

func TestSessionService_End_AlreadyEnded(t *testing.T) {
	svc, sessionRepo, _, _, _ := newTestSessionService()

	userID := uuid.New()
	endedAt := time.Now().UTC()
	session := &domain.StudySession{ID: uuid.New(), UserID: userID, EndedAt: &endedAt}
	sessionRepo.On("GetByID", mock.Anything, session.ID).Return(session, nil)

	_, _, err := svc.End(context.Background(), userID, session.ID)
	assert.ErrorIs(t, err, domain.ErrSessionAlreadyEnded)
}

func TestSessionService_ListByUser_DefaultLimit(t *testing.T) {
	svc, sessionRepo, _, _, _ := newTestSessionService()

	userID := uuid.New()
	sessionRepo.On("ListByUser", mock.Anything, userID, defaultSessionLimit).Return([]*domain.StudySession{}, nil)

	_, err := svc.ListByUser(context.Background(), userID, 0)
	assert.NoError(t, err)
	sessionRepo.AssertExpectations(t)
}
