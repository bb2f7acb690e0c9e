package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"ai-tutor-service/internal/core/domain"
	output "ai-tutor-service/internal/core/ports/output"
)

const defaultSessionLimit = 50

// SessionService handles study sessions and the points they earn
type SessionService struct {
	sessionRepo  output.StudySessionRepository
	topicRepo    output.TopicRepository
	userRepo     output.UserRepository
	gamification *GamificationService
	now          func() time.Time
}

// NewSessionService creates a new session service
func NewSessionService(
	sessionRepo output.StudySessionRepository,
	topicRepo output.TopicRepository,
	userRepo output.UserRepository,
	gamification *GamificationService,
) *SessionService {
	return &SessionService{
		sessionRepo:  sessionRepo,
		topicRepo:    topicRepo,
		userRepo:     userRepo,
		gamification: gamification,
		now:          time.Now,
	}
}

// Start opens a study session on a topic.
func (s *SessionService) Start(ctx context.Context, userID, topicID uuid.UUID) (*domain.StudySession, error) {
	if _, err := s.topicRepo.GetByID(ctx, topicID); err != nil {
		return nil, err
	}

	session, err := domain.NewStudySession(userID, topicID)
	if err != nil {
		return nil, err
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// End closes the session, awards duration points and re-evaluates the user's
// study-time achievements. Only the session owner may end it.
func (s *SessionService) End(ctx context.Context, userID, sessionID uuid.UUID) (*domain.StudySession, int, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, 0, err
	}

	if session.UserID != userID {
		return nil, 0, domain.ErrSessionNotOwned
	}

	points, err := session.End(s.now())
	if err != nil {
		return nil, 0, err
	}

	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, 0, err
	}

	if points > 0 {
		if err := s.userRepo.AddPoints(ctx, userID, points); err != nil {
			log.WithError(err).Warn("failed to award session points")
		}
	}

	if err := s.gamification.EvaluateStudyTime(ctx, userID); err != nil {
		log.WithError(err).Warn("study-time achievement evaluation failed")
	}

	return session, points, nil
}

// ListByUser lists the user's most recent sessions.
func (s *SessionService) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.StudySession, error) {
	if limit <= 0 {
		limit = defaultSessionLimit
	}
	return s.sessionRepo.ListByUser(ctx, userID, limit)
}

// StudyTimeToday sums the user's study time since UTC midnight.
func (s *SessionService) StudyTimeToday(ctx context.Context, userID uuid.UUID) (time.Duration, error) {
	midnight := s.now().UTC().Truncate(24 * time.Hour)
	return s.sessionRepo.TotalDurationSince(ctx, userID, midnight)
}
