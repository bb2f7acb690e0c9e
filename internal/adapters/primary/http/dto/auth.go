package dto

import (
	"time"

	"github.com/google/uuid"

	"ai-tutor-service/internal/core/domain"
)

// ============================================================================
// Request DTOs
// ============================================================================

// RegisterRequest represents a signup request
type RegisterRequest struct {
	Username       string `json:"username" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required"`
	Role           string `json:"role" binding:"required"`
	EducationLevel string `json:"education_level"`
	GradeOrYear    string `json:"grade_or_year"`
	Major          string `json:"major"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ============================================================================
// Response DTOs
// ============================================================================

// UserResponse is the public view of an account
type UserResponse struct {
	ID             uuid.UUID  `json:"id"`
	CreatedAt      time.Time  `json:"created_at"`
	Username       string     `json:"username"`
	Email          string     `json:"email"`
	Role           string     `json:"role"`
	EducationLevel string     `json:"education_level"`
	GradeOrYear    string     `json:"grade_or_year,omitempty"`
	Major          string     `json:"major,omitempty"`
	Points         int        `json:"points"`
	StreakDays     int        `json:"streak_days"`
	LastActivityAt *time.Time `json:"last_activity_at,omitempty"`
}

// AuthResponse carries the account plus its access token
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// ToUserResponse maps a domain user to its public view
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		CreatedAt:      u.CreatedAt,
		Username:       u.Username,
		Email:          u.Email,
		Role:           string(u.Role),
		EducationLevel: string(u.EducationLevel),
		GradeOrYear:    u.GradeOrYear,
		Major:          u.Major,
		Points:         u.Points,
		StreakDays:     u.StreakDays,
		LastActivityAt: u.LastActivityAt,
	}
}
