package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ai-tutor-service/internal/core/domain"
	"ai-tutor-service/internal/testutil"
)

func TestTutorService_Ask(t *testing.T) {
	client := new(testutil.MockTutorClient)
	svc := NewTutorService(client)

	user := &domain.User{EducationLevel: domain.EducationHighSchool, GradeOrYear: "11"}
	client.On("IsAvailable").Return(true)
	client.On("Complete", mock.Anything, askSystemPrompt,
		"The student is at high_school level in grade 11. Question: What is 2+2?").
		Return("Answer: 4", nil)

	answer, err := svc.Ask(context.Background(), user, "What is 2+2?")
	assert.NoError(t, err)
	assert.Equal(t, "Answer: 4", answer)
	client.AssertExpectations(t)
}

func TestTutorService_Ask_EmptyQuestion(t *testing.T) {
	svc := NewTutorService(new(testutil.MockTutorClient))

	_, err := svc.Ask(context.Background(), &domain.User{}, "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidQuestion)
}

func TestTutorService_Ask_Unavailable(t *testing.T) {
	client := new(testutil.MockTutorClient)
	svc := NewTutorService(client)
	client.On("IsAvailable").Return(false)

	_, err := svc.Ask(context.Background(), &domain.User{}, "What is 2+2?")
	assert.ErrorIs(t, err, domain.ErrTutorNotAvailable)
}

func TestTutorService_Ask_NilClient(t *testing.T) {
	svc := NewTutorService(nil)

	_, err := svc.Ask(context.Background(), &domain.User{}, "What is 2+2?")
	assert.ErrorIs(t, err, domain.ErrTutorNotAvailable)
}

func TestTutorService_SuggestTopics(t *testing.T) {
	client := new(testutil.MockTutorClient)
	svc := NewTutorService(client)

	reply := "```json\n[{\"topic_name\":\"Limits\",\"description\":\"Intro to limits\",\"youtube_link\":\"https://youtube.com/watch?v=x\"}]\n```"
	client.On("IsAvailable").Return(true)
	client.On("Complete", mock.Anything, suggestSystemPrompt, mock.AnythingOfType("string")).Return(reply, nil)

	suggestions, err := svc.SuggestTopics(context.Background(), &domain.User{EducationLevel: domain.EducationCollege}, "Calculus")
	assert.NoError(t, err)
	assert.Len(t, suggestions, 1)
	assert.Equal(t, "Limits", suggestions[0].TopicName)
}

func TestTutorService_SuggestTopics_MalformedReply(t *testing.T) {
	client := new(testutil.MockTutorClient)
	svc := NewTutorService(client)

	client.On("IsAvailable").Return(true)
	client.On("Complete", mock.Anything, suggestSystemPrompt, mock.AnythingOfType("string")).Return("sorry, I cannot help", nil)

	_, err := svc.SuggestTopics(context.Background(), &domain.User{}, "Calculus")
	assert.ErrorIs(t, err, domain.ErrTutorBadSuggestions)
}

func TestParseSuggestions(t *testing.T) {
	reply := `Here you go:
[
  {"topic_name": "A", "description": "a", "youtube_link": "l1"},
  {"topic_name": "B", "description": "b", "youtube_link": "l2"}
]
Hope that helps!`

	suggestions, err := parseSuggestions(reply)
	assert.NoError(t, err)
	assert.Len(t, suggestions, 2)
	assert.Equal(t, "B", suggestions[1].TopicName)

	_, err = parseSuggestions("[]")
	assert.Error(t, err)

	_, err = parseSuggestions("no array here")
	assert.Error(t, err)
}
