package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ============================================================================
// Achievements
// ============================================================================

// Requirement codes understood by the award evaluator. The numeric suffix is
// the threshold: streak days or cumulative study minutes.
const (
	RequirementRegistered   = "registered"
	RequirementStreakPrefix = "streak_"
	RequirementStudyPrefix  = "study_minutes_"
)

// Achievement is a badge definition. Name is unique and used as the stable
// lookup key by the evaluator.
type Achievement struct {
	ID          uuid.UUID `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	BadgeImage  string    `json:"badge_image"`
	Points      int       `json:"points"`
	Requirement string    `json:"requirement"`
}

// NewAchievement creates a new Achievement definition
func NewAchievement(name, description, badgeImage, requirement string, points int) (*Achievement, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrAchievementNotFound
	}

	now := time.Now().UTC()
	return &Achievement{
		ID:          uuid.New(),
		CreatedAt:   now,
		UpdatedAt:   now,
		Name:        strings.TrimSpace(name),
		Description: description,
		BadgeImage:  badgeImage,
		Points:      points,
		Requirement: requirement,
	}, nil
}

// UserAchievement records a badge earned by a user. One row per
// (user, achievement).
type UserAchievement struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	AchievementID uuid.UUID `json:"achievement_id"`
	EarnedAt      time.Time `json:"earned_at"`

	// Computed fields
	Achievement *Achievement `json:"achievement,omitempty"`
}

// NewUserAchievement links an earned achievement to a user
func NewUserAchievement(userID, achievementID uuid.UUID) *UserAchievement {
	return &UserAchievement{
		ID:            uuid.New(),
		UserID:        userID,
		AchievementID: achievementID,
		EarnedAt:      time.Now().UTC(),
	}
}

// ============================================================================
// Challenges
// ============================================================================

// Challenge is a time-windowed point objective shown on the dashboard.
type Challenge struct {
	ID          uuid.UUID `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	Points      int       `json:"points"`
	Requirement string    `json:"requirement"`
}

// Active reports whether the challenge window covers now.
func (c *Challenge) Active(now time.Time) bool {
	return !now.Before(c.StartsAt) && now.Before(c.EndsAt)
}

// StreakTiers and StudyMinuteTiers are the award thresholds evaluated after
// logins and ended sessions. Every satisfied tier is awarded, once each.
var (
	StreakTiers      = []int{3, 7, 30}
	StudyMinuteTiers = []int{60, 300, 1000}
)

// StreakAchievementName maps a streak tier to its badge name.
func StreakAchievementName(days int) string {
	switch days {
	case 3:
		return "3-Day Streak"
	case 7:
		return "7-Day Streak"
	case 30:
		return "30-Day Streak"
	default:
		return ""
	}
}

// StudyAchievementName maps a study-minute tier to its badge name.
func StudyAchievementName(minutes int) string {
	switch minutes {
	case 60:
		return "1 Hour of Learning"
	case 300:
		return "5 Hours of Learning"
	case 1000:
		return "Learning Master"
	default:
		return ""
	}
}

// RegistrationAchievementName is awarded once on signup.
const RegistrationAchievementName = "First Steps"
