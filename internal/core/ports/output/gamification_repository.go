package output

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ai-tutor-service/internal/core/domain"
)

// AchievementRepository persists badge definitions and earned badges.
type AchievementRepository interface {
	Create(ctx context.Context, achievement *domain.Achievement) error
	GetByName(ctx context.Context, name string) (*domain.Achievement, error)
	List(ctx context.Context) ([]*domain.Achievement, error)

	// Award inserts a user achievement. Returns domain.ErrAchievementConflict
	// if the user already holds it.
	Award(ctx context.Context, ua *domain.UserAchievement) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.UserAchievement, error)
}

// ChallengeRepository persists time-windowed challenges.
type ChallengeRepository interface {
	Create(ctx context.Context, challenge *domain.Challenge) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Challenge, error)
	ListActive(ctx context.Context, now time.Time) ([]*domain.Challenge, error)
	List(ctx context.Context) ([]*domain.Challenge, error)
}
