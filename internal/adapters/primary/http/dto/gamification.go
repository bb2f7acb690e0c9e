package dto

import (
	"time"

	"github.com/google/uuid"

	"ai-tutor-service/internal/core/domain"
)

// AchievementResponse is the public view of a badge definition
type AchievementResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	BadgeImage  string    `json:"badge_image"`
	Points      int       `json:"points"`
	Requirement string    `json:"requirement"`
}

// EarnedAchievementResponse is a badge earned by the current user
type EarnedAchievementResponse struct {
	Achievement AchievementResponse `json:"achievement"`
	EarnedAt    time.Time           `json:"earned_at"`
}

// ChallengeResponse is the public view of a challenge
type ChallengeResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	Points      int       `json:"points"`
	Requirement string    `json:"requirement"`
}

// ToAchievementResponse maps a domain achievement
func ToAchievementResponse(a *domain.Achievement) AchievementResponse {
	return AchievementResponse{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		BadgeImage:  a.BadgeImage,
		Points:      a.Points,
		Requirement: a.Requirement,
	}
}

// ToEarnedAchievementResponse maps an earned badge with its definition
func ToEarnedAchievementResponse(ua *domain.UserAchievement) EarnedAchievementResponse {
	resp := EarnedAchievementResponse{EarnedAt: ua.EarnedAt}
	if ua.Achievement != nil {
		resp.Achievement = ToAchievementResponse(ua.Achievement)
	}
	return resp
}

// ToChallengeResponse maps a domain challenge
func ToChallengeResponse(c *domain.Challenge) ChallengeResponse {
	return ChallengeResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		StartsAt:    c.StartsAt,
		EndsAt:      c.EndsAt,
		Points:      c.Points,
		Requirement: c.Requirement,
	}
}
