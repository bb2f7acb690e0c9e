package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"ai-tutor-service/internal/core/domain"
	ports "ai-tutor-service/internal/core/ports/output"
)

// ============================================================================
// Achievements
// ============================================================================

type achievementRepo struct {
	pool *pgxpool.Pool
}

// NewAchievementRepository creates a new achievement repository
func NewAchievementRepository(pool *pgxpool.Pool) ports.AchievementRepository {
	return &achievementRepo{pool: pool}
}

func (r *achievementRepo) Create(ctx context.Context, achievement *domain.Achievement) error {
	query := `
		INSERT INTO achievements (id, created_at, updated_at, name, description, badge_image, points, requirement)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.pool.Exec(ctx, query,
		achievement.ID,
		achievement.CreatedAt,
		achievement.UpdatedAt,
		achievement.Name,
		achievement.Description,
		achievement.BadgeImage,
		achievement.Points,
		achievement.Requirement,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAchievementConflict
		}
		return fmt.Errorf("insert achievement: %w", err)
	}
	return nil
}

func (r *achievementRepo) GetByName(ctx context.Context, name string) (*domain.Achievement, error) {
	query := `
		SELECT id, created_at, updated_at, name, description, badge_image, points, requirement
		FROM achievements
		WHERE name = $1
	`
	achievement, err := scanAchievement(r.pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAchievementNotFound
		}
		return nil, fmt.Errorf("get achievement by name: %w", err)
	}
	return achievement, nil
}

func (r *achievementRepo) List(ctx context.Context) ([]*domain.Achievement, error) {
	query := `
		SELECT id, created_at, updated_at, name, description, badge_image, points, requirement
		FROM achievements
		ORDER BY points
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query achievements: %w", err)
	}
	defer rows.Close()

	var achievements []*domain.Achievement
	for rows.Next() {
		achievement, err := scanAchievement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan achievement: %w", err)
		}
		achievements = append(achievements, achievement)
	}

	return achievements, nil
}

func (r *achievementRepo) Award(ctx context.Context, ua *domain.UserAchievement) error {
	query := `
		INSERT INTO user_achievements (id, user_id, achievement_id, earned_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.pool.Exec(ctx, query, ua.ID, ua.UserID, ua.AchievementID, ua.EarnedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAchievementConflict
		}
		return fmt.Errorf("insert user_achievement: %w", err)
	}
	return nil
}

func (r *achievementRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.UserAchievement, error) {
	query := `
		SELECT ua.id, ua.user_id, ua.achievement_id, ua.earned_at,
		       a.id, a.created_at, a.updated_at, a.name, a.description, a.badge_image, a.points, a.requirement
		FROM user_achievements ua
		JOIN achievements a ON a.id = ua.achievement_id
		WHERE ua.user_id = $1
		ORDER BY ua.earned_at
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query user_achievements: %w", err)
	}
	defer rows.Close()

	var earned []*domain.UserAchievement
	for rows.Next() {
		var ua domain.UserAchievement
		var a domain.Achievement
		var description, badgeImage, requirement *string

		err := rows.Scan(
			&ua.ID, &ua.UserID, &ua.AchievementID, &ua.EarnedAt,
			&a.ID, &a.CreatedAt, &a.UpdatedAt, &a.Name, &description, &badgeImage, &a.Points, &requirement,
		)
		if err != nil {
			return nil, fmt.Errorf("scan user_achievement: %w", err)
		}

		if description != nil {
			a.Description = *description
		}
		if badgeImage != nil {
			a.BadgeImage = *badgeImage
		}
		if requirement != nil {
			a.Requirement = *requirement
		}
		ua.Achievement = &a

		earned = append(earned, &ua)
	}

	return earned, nil
}

func scanAchievement(row pgx.Row) (*domain.Achievement, error) {
	var a domain.Achievement
	var description, badgeImage, requirement *string

	err := row.Scan(
		&a.ID, &a.CreatedAt, &a.UpdatedAt, &a.Name, &description, &badgeImage, &a.Points, &requirement,
	)
	if err != nil {
		return nil, err
	}

	if description != nil {
		a.Description = *description
	}
	if badgeImage != nil {
		a.BadgeImage = *badgeImage
	}
	if requirement != nil {
		a.Requirement = *requirement
	}

	return &a, nil
}

// ============================================================================
// Challenges
// ============================================================================

type challengeRepo struct {
	pool *pgxpool.Pool
}

// NewChallengeRepository creates a new challenge repository
func NewChallengeRepository(pool *pgxpool.Pool) ports.ChallengeRepository {
	return &challengeRepo{pool: pool}
}

func (r *challengeRepo) Create(ctx context.Context, challenge *domain.Challenge) error {
	query := `
		INSERT INTO challenges (id, created_at, updated_at, name, description, starts_at, ends_at, points, requirement)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.pool.Exec(ctx, query,
		challenge.ID,
		challenge.CreatedAt,
		challenge.UpdatedAt,
		challenge.Name,
		challenge.Description,
		challenge.StartsAt,
		challenge.EndsAt,
		challenge.Points,
		challenge.Requirement,
	)
	if err != nil {
		return fmt.Errorf("insert challenge: %w", err)
	}
	return nil
}

func (r *challengeRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Challenge, error) {
	query := `
		SELECT id, created_at, updated_at, name, description, starts_at, ends_at, points, requirement
		FROM challenges
		WHERE id = $1
	`
	challenge, err := scanChallenge(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrChallengeNotFound
		}
		return nil, fmt.Errorf("get challenge by id: %w", err)
	}
	return challenge, nil
}

func (r *challengeRepo) ListActive(ctx context.Context, now time.Time) ([]*domain.Challenge, error) {
	query := `
		SELECT id, created_at, updated_at, name, description, starts_at, ends_at, points, requirement
		FROM challenges
		WHERE starts_at <= $1 AND ends_at > $1
		ORDER BY ends_at
	`
	return r.queryChallenges(ctx, query, now)
}

func (r *challengeRepo) List(ctx context.Context) ([]*domain.Challenge, error) {
	query := `
		SELECT id, created_at, updated_at, name, description, starts_at, ends_at, points, requirement
		FROM challenges
		ORDER BY starts_at DESC
	`
	return r.queryChallenges(ctx, query)
}

func (r *challengeRepo) queryChallenges(ctx context.Context, query string, args ...interface{}) ([]*domain.Challenge, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query challenges: %w", err)
	}
	defer rows.Close()

	var challenges []*domain.Challenge
	for rows.Next() {
		challenge, err := scanChallenge(rows)
		if err != nil {
			return nil, fmt.Errorf("scan challenge: %w", err)
		}
		challenges = append(challenges, challenge)
	}

	return challenges, nil
}

func scanChallenge(row pgx.Row) (*domain.Challenge, error) {
	var c domain.Challenge
	var description, requirement *string

	err := row.Scan(
		&c.ID, &c.CreatedAt, &c.UpdatedAt, &c.Name, &description, &c.StartsAt, &c.EndsAt, &c.Points, &requirement,
	)
	if err != nil {
		return nil, err
	}

	if description != nil {
		c.Description = *description
	}
	if requirement != nil {
		c.Requirement = *requirement
	}

	return &c, nil
}
