package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleStudent  Role = "student"
	RoleEducator Role = "educator"
)

func ValidateRole(role Role) error {
	switch role {
	case RoleStudent, RoleEducator:
		return nil
	default:
		return ErrInvalidRole
	}
}

type EducationLevel string

const (
	EducationHighSchool EducationLevel = "high_school"
	EducationCollege    EducationLevel = "college"
)

// User is a registered account, student or educator. Points and streak
// counters are denormalized here and updated by the gamification flow.
type User struct {
	ID             uuid.UUID      `json:"id"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	Username       string         `json:"username"`
	Email          string         `json:"email"`
	PasswordHash   string         `json:"-"`
	Role           Role           `json:"role"`
	EducationLevel EducationLevel `json:"education_level"`
	GradeOrYear    string         `json:"grade_or_year"`
	Major          string         `json:"major"`
	Points         int            `json:"points"`
	StreakDays     int            `json:"streak_days"`
	LastActivityAt *time.Time     `json:"last_activity_at"`
}

// NewUser creates a User with a hashed password already computed by the caller.
func NewUser(username, email, passwordHash string, role Role) (*User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" {
		return nil, ErrInvalidUsername
	}
	if email == "" {
		return nil, ErrInvalidEmail
	}
	if err := ValidateRole(role); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		CreatedAt:    now,
		UpdatedAt:    now,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
	}, nil
}

// TouchStreak advances the consecutive-day counter for an activity at now.
// Days are UTC calendar days: yesterday extends the streak, today keeps it,
// anything older restarts at 1.
func (u *User) TouchStreak(now time.Time) {
	now = now.UTC()
	today := now.Truncate(24 * time.Hour)

	switch {
	case u.LastActivityAt == nil:
		u.StreakDays = 1
	default:
		last := u.LastActivityAt.UTC().Truncate(24 * time.Hour)
		switch today.Sub(last) {
		case 0:
			// Already counted today.
		case 24 * time.Hour:
			u.StreakDays++
		default:
			u.StreakDays = 1
		}
	}

	u.LastActivityAt = &now
	u.UpdatedAt = now
}

// PromptContext renders the student profile fragment prepended to tutor
// questions, mirroring the per-user context the tutoring prompt expects.
func (u *User) PromptContext() string {
	var b strings.Builder
	b.WriteString("The student is at ")
	b.WriteString(string(u.EducationLevel))
	b.WriteString(" level")
	if u.EducationLevel == EducationCollege && u.Major != "" {
		b.WriteString(" majoring in ")
		b.WriteString(u.Major)
	} else if u.GradeOrYear != "" {
		b.WriteString(" in grade ")
		b.WriteString(u.GradeOrYear)
	}
	return b.String()
}
