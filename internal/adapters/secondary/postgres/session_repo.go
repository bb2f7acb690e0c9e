package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ai-tutor-service/internal/core/domain"
	ports "ai-tutor-service/internal/core/ports/output"
)

type sessionRepo struct {
	pool *pgxpool.Pool
}

// NewStudySessionRepository creates a new study session repository
func NewStudySessionRepository(pool *pgxpool.Pool) ports.StudySessionRepository {
	return &sessionRepo{pool: pool}
}

func (r *sessionRepo) Create(ctx context.Context, session *domain.StudySession) error {
	query := `
		INSERT INTO study_sessions (id, created_at, updated_at, user_id, topic_id, started_at, ended_at, duration_seconds)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.pool.Exec(ctx, query,
		session.ID,
		session.CreatedAt,
		session.UpdatedAt,
		session.UserID,
		session.TopicID,
		session.StartedAt,
		session.EndedAt,
		session.DurationSeconds,
	)
	if err != nil {
		return fmt.Errorf("insert study_session: %w", err)
	}
	return nil
}

func (r *sessionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.StudySession, error) {
	query := `
		SELECT id, created_at, updated_at, user_id, topic_id, started_at, ended_at, duration_seconds
		FROM study_sessions
		WHERE id = $1
	`
	session, err := scanSession(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("get study_session by id: %w", err)
	}
	return session, nil
}

func (r *sessionRepo) Update(ctx context.Context, session *domain.StudySession) error {
	query := `
		UPDATE study_sessions
		SET ended_at = $1, duration_seconds = $2, updated_at = NOW()
		WHERE id = $3
	`
	result, err := r.pool.Exec(ctx, query, session.EndedAt, session.DurationSeconds, session.ID)
	if err != nil {
		return fmt.Errorf("update study_session: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}

func (r *sessionRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.StudySession, error) {
	query := `
		SELECT id, created_at, updated_at, user_id, topic_id, started_at, ended_at, duration_seconds
		FROM study_sessions
		WHERE user_id = $1
		ORDER BY started_at DESC
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("query study_sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*domain.StudySession
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan study_session: %w", err)
		}
		sessions = append(sessions, session)
	}

	return sessions, nil
}

func (r *sessionRepo) TotalDurationSince(ctx context.Context, userID uuid.UUID, since time.Time) (time.Duration, error) {
	query := `
		SELECT COALESCE(SUM(duration_seconds), 0)
		FROM study_sessions
		WHERE user_id = $1 AND ended_at IS NOT NULL AND started_at >= $2
	`
	var seconds int64
	if err := r.pool.QueryRow(ctx, query, userID, since).Scan(&seconds); err != nil {
		return 0, fmt.Errorf("sum study_session durations: %w", err)
	}
	return time.Duration(seconds) * time.Second, nil
}

func (r *sessionRepo) TotalDuration(ctx context.Context, userID uuid.UUID) (time.Duration, error) {
	query := `
		SELECT COALESCE(SUM(duration_seconds), 0)
		FROM study_sessions
		WHERE user_id = $1 AND ended_at IS NOT NULL
	`
	var seconds int64
	if err := r.pool.QueryRow(ctx, query, userID).Scan(&seconds); err != nil {
		return 0, fmt.Errorf("sum study_session durations: %w", err)
	}
	return time.Duration(seconds) * time.Second, nil
}

func scanSession(row pgx.Row) (*domain.StudySession, error) {
	var s domain.StudySession
	err := row.Scan(
		&s.ID, &s.CreatedAt, &s.UpdatedAt, &s.UserID, &s.TopicID, &s.StartedAt, &s.EndedAt, &s.DurationSeconds,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
