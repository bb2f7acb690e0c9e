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

type enrollmentRepo struct {
	pool *pgxpool.Pool
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(pool *pgxpool.Pool) ports.EnrollmentRepository {
	return &enrollmentRepo{pool: pool}
}

func (r *enrollmentRepo) Create(ctx context.Context, enrollment *domain.Enrollment) error {
	query := `
		INSERT INTO enrollments (id, created_at, updated_at, user_id, course_id, enrolled_at, completed)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		enrollment.ID,
		enrollment.CreatedAt,
		enrollment.UpdatedAt,
		enrollment.UserID,
		enrollment.CourseID,
		enrollment.EnrolledAt,
		enrollment.Completed,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyEnrolled
		}
		return fmt.Errorf("insert enrollment: %w", err)
	}
	return nil
}

func (r *enrollmentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Enrollment, error) {
	query := `
		SELECT id, created_at, updated_at, user_id, course_id, enrolled_at, completed
		FROM enrollments
		WHERE id = $1
	`
	enrollment, err := scanEnrollment(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("get enrollment by id: %w", err)
	}
	return enrollment, nil
}

func (r *enrollmentRepo) GetByUserAndCourse(ctx context.Context, userID, courseID uuid.UUID) (*domain.Enrollment, error) {
	query := `
		SELECT id, created_at, updated_at, user_id, course_id, enrolled_at, completed
		FROM enrollments
		WHERE user_id = $1 AND course_id = $2
	`
	enrollment, err := scanEnrollment(r.pool.QueryRow(ctx, query, userID, courseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("get enrollment by user and course: %w", err)
	}
	return enrollment, nil
}

func (r *enrollmentRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Enrollment, error) {
	// Courses are joined in one pass so the dashboard does not fan out.
	query := `
		SELECT e.id, e.created_at, e.updated_at, e.user_id, e.course_id, e.enrolled_at, e.completed,
		       c.id, c.created_at, c.updated_at, c.name, c.description, c.subject, c.education_level, c.difficulty
		FROM enrollments e
		JOIN courses c ON c.id = e.course_id
		WHERE e.user_id = $1
		ORDER BY e.enrolled_at DESC
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query enrollments: %w", err)
	}
	defer rows.Close()

	var enrollments []*domain.Enrollment
	for rows.Next() {
		var e domain.Enrollment
		var c domain.Course
		var description, subject *string

		err := rows.Scan(
			&e.ID, &e.CreatedAt, &e.UpdatedAt, &e.UserID, &e.CourseID, &e.EnrolledAt, &e.Completed,
			&c.ID, &c.CreatedAt, &c.UpdatedAt, &c.Name, &description, &subject, &c.EducationLevel, &c.Difficulty,
		)
		if err != nil {
			return nil, fmt.Errorf("scan enrollment: %w", err)
		}

		if description != nil {
			c.Description = *description
		}
		if subject != nil {
			c.Subject = *subject
		}
		e.Course = &c

		enrollments = append(enrollments, &e)
	}

	return enrollments, nil
}

func (r *enrollmentRepo) Update(ctx context.Context, enrollment *domain.Enrollment) error {
	query := `
		UPDATE enrollments
		SET completed = $1, updated_at = NOW()
		WHERE id = $2
	`
	result, err := r.pool.Exec(ctx, query, enrollment.Completed, enrollment.ID)
	if err != nil {
		return fmt.Errorf("update enrollment: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrEnrollmentNotFound
	}
	return nil
}

func scanEnrollment(row pgx.Row) (*domain.Enrollment, error) {
	var e domain.Enrollment
	err := row.Scan(
		&e.ID, &e.CreatedAt, &e.UpdatedAt, &e.UserID, &e.CourseID, &e.EnrolledAt, &e.Completed,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
