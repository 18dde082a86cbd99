package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-courses-api/internal/core/domain"
	"go-courses-api/internal/core/domain/courses"
)

// CourseRepository implements ports.CourseRepository using PostgreSQL.
// Every read joins the owning account's public columns; the password hash
// column is never selected here.
type CourseRepository struct {
	db *pgxpool.Pool
}

func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{db: db}
}

const courseJoinQuery = `
	SELECT c.id, c.title, c.description, c.estimated_time, c.materials_needed,
	       c.user_id, c.created_at, c.updated_at,
	       u.id, u.first_name, u.last_name, u.email_address
	FROM courses c
	JOIN users u ON u.id = c.user_id
`

func (r *CourseRepository) Create(ctx context.Context, course courses.Course) error {
	query := `
		INSERT INTO courses (id, title, description, estimated_time, materials_needed, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.Exec(ctx, query,
		course.ID, course.Title, course.Description,
		course.EstimatedTime, course.MaterialsNeeded,
		course.UserID, course.CreatedAt, course.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert course: %w", err)
	}
	return nil
}

func (r *CourseRepository) FindByID(ctx context.Context, id string) (courses.Course, error) {
	row := r.db.QueryRow(ctx, courseJoinQuery+` WHERE c.id = $1`, id)

	course, err := scanCourse(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
			return courses.Course{}, domain.ErrNotFound
		}
		return courses.Course{}, fmt.Errorf("failed to fetch course: %w", err)
	}
	return course, nil
}

func (r *CourseRepository) FindAll(ctx context.Context) ([]courses.Course, error) {
	rows, err := r.db.Query(ctx, courseJoinQuery+` ORDER BY c.created_at, c.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	list := []courses.Course{}
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		list = append(list, course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return list, nil
}

// Update writes only the mutable columns. Ownership is not part of the SET
// list, so it cannot change through this path.
func (r *CourseRepository) Update(ctx context.Context, course courses.Course) error {
	query := `
		UPDATE courses
		SET title = $1, description = $2, updated_at = $3
		WHERE id = $4
	`
	cmdTag, err := r.db.Exec(ctx, query,
		course.Title, course.Description, course.UpdatedAt, course.ID)
	if err != nil {
		if isInvalidID(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to update course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		if isInvalidID(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to delete course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// isInvalidID reports whether postgres rejected the id value itself
// (SQLSTATE 22P02). A syntactically invalid id cannot match any row, so it
// is indistinguishable from an unknown one.
func isInvalidID(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == invalidTextRepresentation
}

func scanCourse(row pgx.Row) (courses.Course, error) {
	var c courses.Course
	err := row.Scan(
		&c.ID, &c.Title, &c.Description, &c.EstimatedTime, &c.MaterialsNeeded,
		&c.UserID, &c.CreatedAt, &c.UpdatedAt,
		&c.Owner.ID, &c.Owner.FirstName, &c.Owner.LastName, &c.Owner.EmailAddress,
	)
	return c, err
}
