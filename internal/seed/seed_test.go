package seed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ai-tutor-service/internal/core/domain"
	ports "ai-tutor-service/internal/core/ports/output"
	"ai-tutor-service/internal/testutil"
)

func TestSeederRun_EmptyDatabase(t *testing.T) {
	courseRepo := new(testutil.MockCourseRepo)
	topicRepo := new(testutil.MockTopicRepo)
	achievementRepo := new(testutil.MockAchievementRepo)
	challengeRepo := new(testutil.MockChallengeRepo)
	seeder := New(courseRepo, topicRepo, achievementRepo, challengeRepo)

	achievementRepo.On("GetByName", mock.Anything, mock.AnythingOfType("string")).Return(nil, domain.ErrAchievementNotFound)
	achievementRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Achievement")).Return(nil)
	courseRepo.On("List", mock.Anything, mock.AnythingOfType("output.CourseFilter")).Return([]*domain.Course{}, 0, nil)
	courseRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Course")).Return(nil)
	topicRepo.On("ListByCourse", mock.Anything, mock.AnythingOfType("uuid.UUID")).Return([]*domain.Topic{}, nil)
	topicRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Topic")).Return(nil)
	challengeRepo.On("List", mock.Anything).Return([]*domain.Challenge{}, nil)
	challengeRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Challenge")).Return(nil)

	err := seeder.Run(context.Background())
	assert.NoError(t, err)

	achievementRepo.AssertNumberOfCalls(t, "Create", 7)
	courseRepo.AssertNumberOfCalls(t, "Create", 8)
	topicRepo.AssertNumberOfCalls(t, "Create", 4)
	challengeRepo.AssertNumberOfCalls(t, "Create", 1)
}

func TestSeederRun_Idempotent(t *testing.T) {
	courseRepo := new(testutil.MockCourseRepo)
	topicRepo := new(testutil.MockTopicRepo)
	achievementRepo := new(testutil.MockAchievementRepo)
	challengeRepo := new(testutil.MockChallengeRepo)
	seeder := New(courseRepo, topicRepo, achievementRepo, challengeRepo)

	achievementRepo.On("GetByName", mock.Anything, mock.AnythingOfType("string")).Return(&domain.Achievement{}, nil)

	names := []string{
		"Algebra Fundamentals", "Geometry Basics", "Trigonometry", "Pre-Calculus",
		"Calculus I", "Linear Algebra", "Differential Equations", "Advanced Statistics",
	}
	existing := make([]*domain.Course, 0, len(names))
	for _, name := range names {
		course, err := domain.NewCourse(name, "", "Math", domain.EducationHighSchool, domain.DifficultyBeginner)
		assert.NoError(t, err)
		existing = append(existing, course)
	}
	courseRepo.On("List", mock.Anything, ports.CourseFilter{Limit: 1000}).Return(existing, len(existing), nil)

	seededTopics := []*domain.Topic{
		{Name: "Solving Linear Equations"}, {Name: "Quadratic Equations"},
		{Name: "Triangles and Their Properties"}, {Name: "Circle Theorems"},
	}
	topicRepo.On("ListByCourse", mock.Anything, mock.AnythingOfType("uuid.UUID")).Return(seededTopics, nil)

	now := time.Now().UTC()
	challengeRepo.On("List", mock.Anything).Return([]*domain.Challenge{
		{StartsAt: now.Add(-time.Hour), EndsAt: now.Add(time.Hour)},
	}, nil)

	err := seeder.Run(context.Background())
	assert.NoError(t, err)

	achievementRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	courseRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	topicRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	challengeRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
