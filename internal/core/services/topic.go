package services

import (
	"context"

	"github.com/google/uuid"

	"ai-tutor-service/internal/core/domain"
	output "ai-tutor-service/internal/core/ports/output"
)

// TopicService handles topics inside courses
type TopicService struct {
	topicRepo  output.TopicRepository
	courseRepo output.CourseRepository
}

// NewTopicService creates a new topic service
func NewTopicService(topicRepo output.TopicRepository, courseRepo output.CourseRepository) *TopicService {
	return &TopicService{
		topicRepo:  topicRepo,
		courseRepo: courseRepo,
	}
}

// CreateTopicRequest contains parameters for creating a topic
type CreateTopicRequest struct {
	CourseID    uuid.UUID
	Name        string
	Description string
	VideoLinks  []string
}

// Create creates a topic under an existing course
func (s *TopicService) Create(ctx context.Context, req CreateTopicRequest) (*domain.Topic, error) {
	if _, err := s.courseRepo.GetByID(ctx, req.CourseID); err != nil {
		return nil, err
	}

	topic, err := domain.NewTopic(req.CourseID, req.Name, req.Description, req.VideoLinks)
	if err != nil {
		return nil, err
	}

	if err := s.topicRepo.Create(ctx, topic); err != nil {
		return nil, err
	}
	return topic, nil
}

// Get retrieves a topic
func (s *TopicService) Get(ctx context.Context, id uuid.UUID) (*domain.Topic, error) {
	return s.topicRepo.GetByID(ctx, id)
}

// ListByCourse lists a course's topics
func (s *TopicService) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]*domain.Topic, error) {
	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		return nil, err
	}
	return s.topicRepo.ListByCourse(ctx, courseID)
}

// UpdateTopicRequest contains optional topic fields to change
type UpdateTopicRequest struct {
	Name        *string
	Description *string
	VideoLinks  []string
}

// Update applies a partial update to a topic
func (s *TopicService) Update(ctx context.Context, id uuid.UUID, req UpdateTopicRequest) (*domain.Topic, error) {
	topic, err := s.topicRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, domain.ErrInvalidTopicName
		}
		topic.Name = *req.Name
	}
	if req.Description != nil {
		topic.Description = *req.Description
	}
	if req.VideoLinks != nil {
		topic.VideoLinks = req.VideoLinks
	}

	if err := s.topicRepo.Update(ctx, topic); err != nil {
		return nil, err
	}
	return topic, nil
}

// Delete removes a topic
func (s *TopicService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.topicRepo.Delete(ctx, id)
}
