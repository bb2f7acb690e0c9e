package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ai-tutor-service/internal/core/domain"
	ports "ai-tutor-service/internal/core/ports/output"
)

type topicRepo struct {
	pool *pgxpool.Pool
}

// NewTopicRepository creates a new topic repository
func NewTopicRepository(pool *pgxpool.Pool) ports.TopicRepository {
	return &topicRepo{pool: pool}
}

func (r *topicRepo) Create(ctx context.Context, topic *domain.Topic) error {
	linksJSON, err := json.Marshal(topic.VideoLinks)
	if err != nil {
		return fmt.Errorf("marshal video links: %w", err)
	}

	query := `
		INSERT INTO topics (id, created_at, updated_at, course_id, name, description, video_links)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = r.pool.Exec(ctx, query,
		topic.ID,
		topic.CreatedAt,
		topic.UpdatedAt,
		topic.CourseID,
		topic.Name,
		topic.Description,
		linksJSON,
	)
	if err != nil {
		return fmt.Errorf("insert topic: %w", err)
	}
	return nil
}

func (r *topicRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error) {
	query := `
		SELECT id, created_at, updated_at, course_id, name, description, video_links
		FROM topics
		WHERE id = $1
	`
	topic, err := scanTopic(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTopicNotFound
		}
		return nil, fmt.Errorf("get topic by id: %w", err)
	}
	return topic, nil
}

func (r *topicRepo) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]*domain.Topic, error) {
	query := `
		SELECT id, created_at, updated_at, course_id, name, description, video_links
		FROM topics
		WHERE course_id = $1
		ORDER BY created_at
	`
	rows, err := r.pool.Query(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("query topics: %w", err)
	}
	defer rows.Close()

	var topics []*domain.Topic
	for rows.Next() {
		topic, err := scanTopic(rows)
		if err != nil {
			return nil, fmt.Errorf("scan topic: %w", err)
		}
		topics = append(topics, topic)
	}

	return topics, nil
}

func (r *topicRepo) Update(ctx context.Context, topic *domain.Topic) error {
	linksJSON, err := json.Marshal(topic.VideoLinks)
	if err != nil {
		return fmt.Errorf("marshal video links: %w", err)
	}

	query := `
		UPDATE topics
		SET name = $1, description = $2, video_links = $3, updated_at = NOW()
		WHERE id = $4
	`
	result, err := r.pool.Exec(ctx, query, topic.Name, topic.Description, linksJSON, topic.ID)
	if err != nil {
		return fmt.Errorf("update topic: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrTopicNotFound
	}
	return nil
}

func (r *topicRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM topics WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete topic: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrTopicNotFound
	}
	return nil
}

func scanTopic(row pgx.Row) (*domain.Topic, error) {
	var t domain.Topic
	var description *string
	var linksJSON []byte

	err := row.Scan(
		&t.ID, &t.CreatedAt, &t.UpdatedAt, &t.CourseID, &t.Name, &description, &linksJSON,
	)
	if err != nil {
		return nil, err
	}

	if description != nil {
		t.Description = *description
	}
	if len(linksJSON) > 0 {
		if err := json.Unmarshal(linksJSON, &t.VideoLinks); err != nil {
			return nil, fmt.Errorf("unmarshal video links: %w", err)
		}
	}

	return &t, nil
}
