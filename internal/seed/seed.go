// Package seed loads the starter catalog: badge definitions, math courses for
// both education levels, topics with video links, and a rotating weekly
// challenge. Safe to run repeatedly.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"ai-tutor-service/internal/core/domain"
	output "ai-tutor-service/internal/core/ports/output"
)

type Seeder struct {
	courseRepo      output.CourseRepository
	topicRepo       output.TopicRepository
	achievementRepo output.AchievementRepository
	challengeRepo   output.ChallengeRepository
}

func New(
	courseRepo output.CourseRepository,
	topicRepo output.TopicRepository,
	achievementRepo output.AchievementRepository,
	challengeRepo output.ChallengeRepository,
) *Seeder {
	return &Seeder{
		courseRepo:      courseRepo,
		topicRepo:       topicRepo,
		achievementRepo: achievementRepo,
		challengeRepo:   challengeRepo,
	}
}

// Run inserts whatever starter data is missing.
func (s *Seeder) Run(ctx context.Context) error {
	if err := s.seedAchievements(ctx); err != nil {
		return fmt.Errorf("seed achievements: %w", err)
	}
	if err := s.seedCatalog(ctx); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	if err := s.seedChallenges(ctx); err != nil {
		return fmt.Errorf("seed challenges: %w", err)
	}
	return nil
}

type achievementSeed struct {
	name        string
	description string
	badgeImage  string
	requirement string
	points      int
}

func (s *Seeder) seedAchievements(ctx context.Context) error {
	seeds := []achievementSeed{
		{"First Steps", "Register an account", "badge_first_steps.png", domain.RequirementRegistered, 10},
		{"3-Day Streak", "Login for 3 consecutive days", "badge_streak_3.png", domain.RequirementStreakPrefix + "3", 15},
		{"7-Day Streak", "Login for 7 consecutive days", "badge_streak_7.png", domain.RequirementStreakPrefix + "7", 30},
		{"30-Day Streak", "Login for 30 consecutive days", "badge_streak_30.png", domain.RequirementStreakPrefix + "30", 100},
		{"1 Hour of Learning", "Study for a total of 1 hour", "badge_1h.png", domain.RequirementStudyPrefix + "60", 20},
		{"5 Hours of Learning", "Study for a total of 5 hours", "badge_5h.png", domain.RequirementStudyPrefix + "300", 50},
		{"Learning Master", "Study for a total of 10+ hours", "badge_master.png", domain.RequirementStudyPrefix + "1000", 150},
	}

	for _, seed := range seeds {
		_, err := s.achievementRepo.GetByName(ctx, seed.name)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrAchievementNotFound) {
			return err
		}

		achievement, err := domain.NewAchievement(seed.name, seed.description, seed.badgeImage, seed.requirement, seed.points)
		if err != nil {
			return err
		}
		if err := s.achievementRepo.Create(ctx, achievement); err != nil {
			return err
		}
		log.WithField("achievement", seed.name).Info("achievement seeded")
	}
	return nil
}

type courseSeed struct {
	name        string
	description string
	level       domain.EducationLevel
	difficulty  domain.Difficulty
	topics      []topicSeed
}

type topicSeed struct {
	name        string
	description string
	videoLinks  []string
}

func (s *Seeder) seedCatalog(ctx context.Context) error {
	seeds := []courseSeed{
		{
			name:        "Algebra Fundamentals",
			description: "Basic algebraic concepts and equations",
			level:       domain.EducationHighSchool,
			difficulty:  domain.DifficultyBeginner,
			topics: []topicSeed{
				{
					name:        "Solving Linear Equations",
					description: "Learn how to solve equations in the form ax + b = c",
					videoLinks: []string{
						"https://www.youtube.com/watch?v=wAHJiM3nZD4",
						"https://www.youtube.com/watch?v=3YzMh-b-CJU",
					},
				},
				{
					name:        "Quadratic Equations",
					description: "Solving quadratic equations using factoring and the quadratic formula",
					videoLinks: []string{
						"https://www.youtube.com/watch?v=EBbtoFMJvFc",
						"https://www.youtube.com/watch?v=i7idZfS8t8w",
					},
				},
			},
		},
		{
			name:        "Geometry Basics",
			description: "Introduction to geometric shapes and theorems",
			level:       domain.EducationHighSchool,
			difficulty:  domain.DifficultyBeginner,
			topics: []topicSeed{
				{
					name:        "Triangles and Their Properties",
					description: "Understanding different types of triangles and their properties",
					videoLinks: []string{
						"https://www.youtube.com/watch?v=JvBbRNRc-Wk",
						"https://www.youtube.com/watch?v=7Jw0YF_UvRo",
					},
				},
				{
					name:        "Circle Theorems",
					description: "Understanding theorems related to circles",
					videoLinks: []string{
						"https://www.youtube.com/watch?v=Pv8H8-VH8r8",
						"https://www.youtube.com/watch?v=O30CNvgCJqs",
					},
				},
			},
		},
		{
			name:        "Trigonometry",
			description: "Study of triangles and trigonometric functions",
			level:       domain.EducationHighSchool,
			difficulty:  domain.DifficultyIntermediate,
		},
		{
			name:        "Pre-Calculus",
			description: "Preparation for calculus concepts",
			level:       domain.EducationHighSchool,
			difficulty:  domain.DifficultyAdvanced,
		},
		{
			name:        "Calculus I",
			description: "Limits, derivatives, and basic integration",
			level:       domain.EducationCollege,
			difficulty:  domain.DifficultyBeginner,
		},
		{
			name:        "Linear Algebra",
			description: "Vector spaces, matrices, and linear transformations",
			level:       domain.EducationCollege,
			difficulty:  domain.DifficultyIntermediate,
		},
		{
			name:        "Differential Equations",
			description: "Solving and applications of differential equations",
			level:       domain.EducationCollege,
			difficulty:  domain.DifficultyIntermediate,
		},
		{
			name:        "Advanced Statistics",
			description: "Statistical inference and data analysis",
			level:       domain.EducationCollege,
			difficulty:  domain.DifficultyAdvanced,
		},
	}

	existing, err := s.existingCourses(ctx)
	if err != nil {
		return err
	}

	for _, seed := range seeds {
		course, ok := existing[seed.name]
		if !ok {
			course, err = domain.NewCourse(seed.name, seed.description, "Math", seed.level, seed.difficulty)
			if err != nil {
				return err
			}
			if err := s.courseRepo.Create(ctx, course); err != nil {
				return err
			}
			log.WithField("course", seed.name).Info("course seeded")
		}

		if len(seed.topics) == 0 {
			continue
		}

		topics, err := s.topicRepo.ListByCourse(ctx, course.ID)
		if err != nil {
			return err
		}
		present := make(map[string]bool, len(topics))
		for _, t := range topics {
			present[t.Name] = true
		}

		for _, ts := range seed.topics {
			if present[ts.name] {
				continue
			}
			topic, err := domain.NewTopic(course.ID, ts.name, ts.description, ts.videoLinks)
			if err != nil {
				return err
			}
			if err := s.topicRepo.Create(ctx, topic); err != nil {
				return err
			}
			log.WithFields(log.Fields{"course": seed.name, "topic": ts.name}).Info("topic seeded")
		}
	}
	return nil
}

func (s *Seeder) existingCourses(ctx context.Context) (map[string]*domain.Course, error) {
	courses, _, err := s.courseRepo.List(ctx, output.CourseFilter{Limit: 1000})
	if err != nil {
		return nil, err
	}
	byName := make(map[string]*domain.Course, len(courses))
	for _, c := range courses {
		byName[c.Name] = c
	}
	return byName, nil
}

func (s *Seeder) seedChallenges(ctx context.Context) error {
	challenges, err := s.challengeRepo.List(ctx)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, c := range challenges {
		if c.Active(now) {
			return nil
		}
	}

	// One-week study challenge starting today.
	start := now.Truncate(24 * time.Hour)
	challenge := &domain.Challenge{
		ID:          uuid.New(),
		CreatedAt:   now,
		UpdatedAt:   now,
		Name:        "Weekly Study Sprint",
		Description: "Study for 150 minutes this week",
		StartsAt:    start,
		EndsAt:      start.Add(7 * 24 * time.Hour),
		Points:      50,
		Requirement: domain.RequirementStudyPrefix + "150",
	}
	if err := s.challengeRepo.Create(ctx, challenge); err != nil {
		return err
	}
	log.WithField("challenge", challenge.Name).Info("challenge seeded")
	return nil
}
