package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"ai-tutor-service/internal/core/domain"
	output "ai-tutor-service/internal/core/ports/output"
)

// askSystemPrompt keeps answers short for math and factual questions.
const askSystemPrompt = "You are an educational AI tutor. " +
	"For math and factual queries, give only the final answer, e.g., 'Answer: 4'. " +
	"Avoid detailed breakdown unless the question requires explanation."

const suggestSystemPrompt = "You are an educational AI tutor. " +
	"Reply with JSON only, no prose around it."

// TutorService answers student questions through the LLM gateway
type TutorService struct {
	client output.TutorClient
}

// NewTutorService creates a new tutor service
func NewTutorService(client output.TutorClient) *TutorService {
	return &TutorService{client: client}
}

// Ask sends a question enriched with the student's profile context.
func (s *TutorService) Ask(ctx context.Context, user *domain.User, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", domain.ErrInvalidQuestion
	}
	if s.client == nil || !s.client.IsAvailable() {
		return "", domain.ErrTutorNotAvailable
	}

	prompt := fmt.Sprintf("%s. Question: %s", user.PromptContext(), question)
	return s.client.Complete(ctx, askSystemPrompt, prompt)
}

// TopicSuggestion is one study topic proposed by the model.
type TopicSuggestion struct {
	TopicName   string `json:"topic_name"`
	Description string `json:"description"`
	VideoLink   string `json:"youtube_link"`
}

// SuggestTopics asks the model for three study topics for a subject and parses
// the structured reply.
func (s *TutorService) SuggestTopics(ctx context.Context, user *domain.User, subject string) ([]TopicSuggestion, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return nil, domain.ErrInvalidSubject
	}
	if s.client == nil || !s.client.IsAvailable() {
		return nil, domain.ErrTutorNotAvailable
	}

	prompt := fmt.Sprintf(
		"%s studying %s. Suggest 3 key topics they should learn next, "+
			"with a brief description and 1 YouTube video link for each. "+
			"Respond as a JSON array of objects with fields: topic_name, description, youtube_link.",
		user.PromptContext(), subject,
	)

	reply, err := s.client.Complete(ctx, suggestSystemPrompt, prompt)
	if err != nil {
		return nil, err
	}

	suggestions, err := parseSuggestions(reply)
	if err != nil {
		return nil, domain.ErrTutorBadSuggestions
	}
	return suggestions, nil
}

// parseSuggestions tolerates code fences and prose around the JSON array.
func parseSuggestions(reply string) ([]TopicSuggestion, error) {
	start := strings.Index(reply, "[")
	end := strings.LastIndex(reply, "]")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON array in reply")
	}

	var suggestions []TopicSuggestion
	if err := json.Unmarshal([]byte(reply[start:end+1]), &suggestions); err != nil {
		return nil, fmt.Errorf("decode suggestions: %w", err)
	}
	if len(suggestions) == 0 {
		return nil, fmt.Errorf("empty suggestions")
	}
	return suggestions, nil
}
