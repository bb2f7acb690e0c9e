package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"ai-tutor-service/internal/core/domain"
	ports "ai-tutor-service/internal/core/ports/output"
)

type courseRepo struct {
	pool *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(pool *pgxpool.Pool) ports.CourseRepository {
	return &courseRepo{pool: pool}
}

func (r *courseRepo) Create(ctx context.Context, course *domain.Course) error {
	query := `
		INSERT INTO courses (id, created_at, updated_at, name, description, subject, education_level, difficulty)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.pool.Exec(ctx, query,
		course.ID,
		course.CreatedAt,
		course.UpdatedAt,
		course.Name,
		course.Description,
		course.Subject,
		course.EducationLevel,
		course.Difficulty,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrCourseNameConflict
		}
		return fmt.Errorf("insert course: %w", err)
	}
	return nil
}

func (r *courseRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Course, error) {
	query := `
		SELECT id, created_at, updated_at, name, description, subject, education_level, difficulty
		FROM courses
		WHERE id = $1
	`
	course, err := scanCourse(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, fmt.Errorf("get course by id: %w", err)
	}
	return course, nil
}

func (r *courseRepo) List(ctx context.Context, filter ports.CourseFilter) ([]*domain.Course, int, error) {
	where := "WHERE 1=1"
	args := []interface{}{}
	idx := 1

	if filter.EducationLevel != "" {
		where += fmt.Sprintf(" AND education_level = $%d", idx)
		args = append(args, filter.EducationLevel)
		idx++
	}
	if filter.Subject != "" {
		where += fmt.Sprintf(" AND subject = $%d", idx)
		args = append(args, filter.Subject)
		idx++
	}
	if filter.Difficulty != "" {
		where += fmt.Sprintf(" AND difficulty = $%d", idx)
		args = append(args, filter.Difficulty)
		idx++
	}

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM courses %s", where)
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count courses: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, created_at, updated_at, name, description, subject, education_level, difficulty
		FROM courses %s
		ORDER BY name
		LIMIT $%d OFFSET $%d
	`, where, idx, idx+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query courses: %w", err)
	}
	defer rows.Close()

	var courses []*domain.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan course: %w", err)
		}
		courses = append(courses, course)
	}

	return courses, total, nil
}

func (r *courseRepo) Update(ctx context.Context, course *domain.Course) error {
	query := `
		UPDATE courses
		SET name = $1, description = $2, subject = $3, education_level = $4, difficulty = $5, updated_at = NOW()
		WHERE id = $6
	`
	result, err := r.pool.Exec(ctx, query,
		course.Name,
		course.Description,
		course.Subject,
		course.EducationLevel,
		course.Difficulty,
		course.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrCourseNameConflict
		}
		return fmt.Errorf("update course: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrCourseNotFound
	}
	return nil
}

func (r *courseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	// Topics cascade first
	if _, err := r.pool.Exec(ctx, `DELETE FROM topics WHERE course_id = $1`, id); err != nil {
		return fmt.Errorf("delete course topics: %w", err)
	}

	result, err := r.pool.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrCourseNotFound
	}
	return nil
}

func scanCourse(row pgx.Row) (*domain.Course, error) {
	var c domain.Course
	var description, subject *string

	err := row.Scan(
		&c.ID, &c.CreatedAt, &c.UpdatedAt, &c.Name,
		&description, &subject, &c.EducationLevel, &c.Difficulty,
	)
	if err != nil {
		return nil, err
	}

	if description != nil {
		c.Description = *description
	}
	if subject != nil {
		c.Subject = *subject
	}

	return &c, nil
}
