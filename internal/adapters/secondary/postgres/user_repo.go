package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"ai-tutor-service/internal/core/domain"
	ports "ai-tutor-service/internal/core/ports/output"
)

type userRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(pool *pgxpool.Pool) ports.UserRepository {
	return &userRepo{pool: pool}
}

const userColumns = `id, created_at, updated_at, username, email, password_hash, role,
	education_level, grade_or_year, major, points, streak_days, last_activity_at`

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, created_at, updated_at, username, email, password_hash, role,
			education_level, grade_or_year, major, points, streak_days, last_activity_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := r.pool.Exec(ctx, query,
		user.ID,
		user.CreatedAt,
		user.UpdatedAt,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.EducationLevel,
		user.GradeOrYear,
		user.Major,
		user.Points,
		user.StreakDays,
		user.LastActivityAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "email") {
				return domain.ErrEmailConflict
			}
			return domain.ErrUsernameConflict
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)
	user, err := scanUser(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return user, nil
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE username = $1`, userColumns)
	user, err := scanUser(r.pool.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return user, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1`, userColumns)
	user, err := scanUser(r.pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return user, nil
}

func (r *userRepo) Update(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users
		SET email = $1, password_hash = $2, education_level = $3, grade_or_year = $4,
			major = $5, points = $6, streak_days = $7, last_activity_at = $8, updated_at = NOW()
		WHERE id = $9
	`
	result, err := r.pool.Exec(ctx, query,
		user.Email,
		user.PasswordHash,
		user.EducationLevel,
		user.GradeOrYear,
		user.Major,
		user.Points,
		user.StreakDays,
		user.LastActivityAt,
		user.ID,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *userRepo) AddPoints(ctx context.Context, id uuid.UUID, points int) error {
	query := `UPDATE users SET points = points + $1, updated_at = NOW() WHERE id = $2`
	result, err := r.pool.Exec(ctx, query, points, id)
	if err != nil {
		return fmt.Errorf("add user points: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	var gradeOrYear, major *string

	err := row.Scan(
		&u.ID, &u.CreatedAt, &u.UpdatedAt, &u.Username, &u.Email, &u.PasswordHash, &u.Role,
		&u.EducationLevel, &gradeOrYear, &major, &u.Points, &u.StreakDays, &u.LastActivityAt,
	)
	if err != nil {
		return nil, err
	}

	if gradeOrYear != nil {
		u.GradeOrYear = *gradeOrYear
	}
	if major != nil {
		u.Major = *major
	}

	return &u, nil
}
