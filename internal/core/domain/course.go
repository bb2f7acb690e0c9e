package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

func ValidateDifficulty(d Difficulty) error {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return nil
	default:
		return ErrInvalidDifficulty
	}
}

// Course is a catalog entry students enroll in. Topics hang off a course.
type Course struct {
	ID             uuid.UUID      `json:"id"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Subject        string         `json:"subject"`
	EducationLevel EducationLevel `json:"education_level"`
	Difficulty     Difficulty     `json:"difficulty"`

	// Computed fields
	Topics []*Topic `json:"topics,omitempty"`
}

// NewCourse creates a new Course
func NewCourse(name, description, subject string, level EducationLevel, difficulty Difficulty) (*Course, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidCourseName
	}
	if err := ValidateDifficulty(difficulty); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Course{
		ID:             uuid.New(),
		CreatedAt:      now,
		UpdatedAt:      now,
		Name:           strings.TrimSpace(name),
		Description:    description,
		Subject:        subject,
		EducationLevel: level,
		Difficulty:     difficulty,
	}, nil
}
