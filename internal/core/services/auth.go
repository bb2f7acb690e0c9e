package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"ai-tutor-service/internal/core/domain"
	output "ai-tutor-service/internal/core/ports/output"
	"ai-tutor-service/internal/token"
)

const minPasswordLength = 8

// AuthService handles registration, login and profile lookups.
type AuthService struct {
	userRepo     output.UserRepository
	gamification *GamificationService
	tokens       *token.Manager
	now          func() time.Time
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo output.UserRepository, gamification *GamificationService, tokens *token.Manager) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		gamification: gamification,
		tokens:       tokens,
		now:          time.Now,
	}
}

// RegisterRequest contains parameters for creating an account
type RegisterRequest struct {
	Username       string
	Email          string
	Password       string
	Role           domain.Role
	EducationLevel domain.EducationLevel
	GradeOrYear    string
	Major          string
}

// Register creates an account, awards the signup achievement and returns the
// user with an access token.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*domain.User, string, error) {
	if len(req.Password) < minPasswordLength {
		return nil, "", domain.ErrInvalidPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user, err := domain.NewUser(req.Username, req.Email, string(hash), req.Role)
	if err != nil {
		return nil, "", err
	}
	user.EducationLevel = req.EducationLevel
	user.GradeOrYear = req.GradeOrYear
	user.Major = req.Major
	now := s.now().UTC()
	user.LastActivityAt = &now
	user.StreakDays = 1

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	if err := s.gamification.AwardByName(ctx, user.ID, domain.RegistrationAchievementName); err != nil {
		log.WithError(err).Warn("failed to award registration achievement")
	}

	signed, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}

	// Re-read so the response reflects the registration award.
	created, err := s.userRepo.GetByID(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}

	return created, signed, nil
}

// Login verifies credentials, advances the daily streak and returns the user
// with an access token.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	user.TouchStreak(s.now())
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, "", err
	}

	if err := s.gamification.EvaluateStreak(ctx, user.ID, user.StreakDays); err != nil {
		log.WithError(err).Warn("streak achievement evaluation failed")
	}

	signed, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}

	return user, signed, nil
}

// Profile returns the account for an authenticated user id.
func (s *AuthService) Profile(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}
