package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"ai-tutor-service/internal/core/domain"
	output "ai-tutor-service/internal/core/ports/output"
)

// GamificationService awards achievements and surfaces challenges.
type GamificationService struct {
	achievementRepo output.AchievementRepository
	challengeRepo   output.ChallengeRepository
	userRepo        output.UserRepository
	sessionRepo     output.StudySessionRepository
}

// NewGamificationService creates a new gamification service
func NewGamificationService(
	achievementRepo output.AchievementRepository,
	challengeRepo output.ChallengeRepository,
	userRepo output.UserRepository,
	sessionRepo output.StudySessionRepository,
) *GamificationService {
	return &GamificationService{
		achievementRepo: achievementRepo,
		challengeRepo:   challengeRepo,
		userRepo:        userRepo,
		sessionRepo:     sessionRepo,
	}
}

// AwardByName grants the named achievement to the user if it exists and the
// user does not already hold it. The achievement's points are added to the
// user. Unknown names and duplicate awards are not errors.
func (s *GamificationService) AwardByName(ctx context.Context, userID uuid.UUID, name string) error {
	achievement, err := s.achievementRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrAchievementNotFound) {
			return nil
		}
		return err
	}

	ua := domain.NewUserAchievement(userID, achievement.ID)
	if err := s.achievementRepo.Award(ctx, ua); err != nil {
		if errors.Is(err, domain.ErrAchievementConflict) {
			return nil
		}
		return err
	}

	if achievement.Points > 0 {
		if err := s.userRepo.AddPoints(ctx, userID, achievement.Points); err != nil {
			return err
		}
	}

	log.WithFields(log.Fields{
		"user_id":     userID,
		"achievement": achievement.Name,
		"points":      achievement.Points,
	}).Info("achievement awarded")

	return nil
}

// EvaluateStreak awards every streak tier the user's current streak satisfies.
func (s *GamificationService) EvaluateStreak(ctx context.Context, userID uuid.UUID, streakDays int) error {
	for _, tier := range domain.StreakTiers {
		if streakDays < tier {
			break
		}
		if err := s.AwardByName(ctx, userID, domain.StreakAchievementName(tier)); err != nil {
			return err
		}
	}
	return nil
}

// EvaluateStudyTime awards every cumulative study-minute tier the user has
// reached.
func (s *GamificationService) EvaluateStudyTime(ctx context.Context, userID uuid.UUID) error {
	total, err := s.sessionRepo.TotalDuration(ctx, userID)
	if err != nil {
		return err
	}

	minutes := int(total.Minutes())
	for _, tier := range domain.StudyMinuteTiers {
		if minutes < tier {
			break
		}
		if err := s.AwardByName(ctx, userID, domain.StudyAchievementName(tier)); err != nil {
			return err
		}
	}
	return nil
}

// ListAchievements lists all badge definitions.
func (s *GamificationService) ListAchievements(ctx context.Context) ([]*domain.Achievement, error) {
	return s.achievementRepo.List(ctx)
}

// ListUserAchievements lists badges earned by a user.
func (s *GamificationService) ListUserAchievements(ctx context.Context, userID uuid.UUID) ([]*domain.UserAchievement, error) {
	return s.achievementRepo.ListByUser(ctx, userID)
}

// ActiveChallenges lists challenges whose window covers now.
func (s *GamificationService) ActiveChallenges(ctx context.Context) ([]*domain.Challenge, error) {
	return s.challengeRepo.ListActive(ctx, time.Now().UTC())
}
