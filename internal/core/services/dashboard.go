package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ai-tutor-service/internal/core/domain"
	output "ai-tutor-service/internal/core/ports/output"
)

const recommendedCourseLimit = 5

// Dashboard aggregates everything the landing view needs for one user.
type Dashboard struct {
	User               *domain.User
	RecommendedCourses []*domain.Course
	Enrollments        []*domain.Enrollment
	ActiveChallenges   []*domain.Challenge
	Achievements       []*domain.UserAchievement
	StudyMinutesToday  int
	DailyGoalMinutes   int
}

// DashboardService builds the per-user overview
type DashboardService struct {
	userRepo         output.UserRepository
	courseRepo       output.CourseRepository
	enrollmentRepo   output.EnrollmentRepository
	challengeRepo    output.ChallengeRepository
	achievementRepo  output.AchievementRepository
	sessionRepo      output.StudySessionRepository
	dailyGoalMinutes int
	now              func() time.Time
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	userRepo output.UserRepository,
	courseRepo output.CourseRepository,
	enrollmentRepo output.EnrollmentRepository,
	challengeRepo output.ChallengeRepository,
	achievementRepo output.AchievementRepository,
	sessionRepo output.StudySessionRepository,
	dailyGoalMinutes int,
) *DashboardService {
	return &DashboardService{
		userRepo:         userRepo,
		courseRepo:       courseRepo,
		enrollmentRepo:   enrollmentRepo,
		challengeRepo:    challengeRepo,
		achievementRepo:  achievementRepo,
		sessionRepo:      sessionRepo,
		dailyGoalMinutes: dailyGoalMinutes,
		now:              time.Now,
	}
}

// Overview assembles the dashboard for a user.
func (s *DashboardService) Overview(ctx context.Context, userID uuid.UUID) (*Dashboard, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	recommended, _, err := s.courseRepo.List(ctx, output.CourseFilter{
		EducationLevel: user.EducationLevel,
		Limit:          recommendedCourseLimit,
	})
	if err != nil {
		return nil, err
	}

	enrollments, err := s.enrollmentRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	challenges, err := s.challengeRepo.ListActive(ctx, now)
	if err != nil {
		return nil, err
	}

	achievements, err := s.achievementRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	midnight := now.Truncate(24 * time.Hour)
	studied, err := s.sessionRepo.TotalDurationSince(ctx, userID, midnight)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		User:               user,
		RecommendedCourses: recommended,
		Enrollments:        enrollments,
		ActiveChallenges:   challenges,
		Achievements:       achievements,
		StudyMinutesToday:  int(studied.Minutes()),
		DailyGoalMinutes:   s.dailyGoalMinutes,
	}, nil
}
