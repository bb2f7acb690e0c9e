package dto

import "ai-tutor-service/internal/core/services"

// AskRequest represents a tutoring question
type AskRequest struct {
	Question string `json:"question" binding:"required"`
}

// AskResponse carries the model's answer
type AskResponse struct {
	Answer string `json:"answer"`
}

// SuggestTopicsRequest asks for study topics on a subject
type SuggestTopicsRequest struct {
	Subject string `json:"subject" binding:"required"`
}

// TopicSuggestionResponse is one proposed study topic
type TopicSuggestionResponse struct {
	TopicName   string `json:"topic_name"`
	Description string `json:"description"`
	VideoLink   string `json:"youtube_link"`
}

// SuggestTopicsResponse wraps the suggestions
type SuggestTopicsResponse struct {
	Items []TopicSuggestionResponse `json:"items"`
	Total int                       `json:"total"`
}

// ToSuggestTopicsResponse maps service suggestions
func ToSuggestTopicsResponse(suggestions []services.TopicSuggestion) SuggestTopicsResponse {
	items := make([]TopicSuggestionResponse, 0, len(suggestions))
	for _, s := range suggestions {
		items = append(items, TopicSuggestionResponse{
			TopicName:   s.TopicName,
			Description: s.Description,
			VideoLink:   s.VideoLink,
		})
	}
	return SuggestTopicsResponse{Items: items, Total: len(items)}
}
