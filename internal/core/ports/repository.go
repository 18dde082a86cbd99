package ports

import (
	"context"

	"go-courses-api/internal/core/domain/account"
	"go-courses-api/internal/core/domain/courses"
)

// UserRepository defines storage for accounts.
type UserRepository interface {
	// Create persists a new user. A colliding email address surfaces as
	// domain.ErrDuplicateEmail; the uniqueness check is atomic at the
	// storage layer.
	Create(ctx context.Context, user account.User) error

	// FindByEmail resolves an account by exact email match, returning
	// domain.ErrNotFound when no such account exists.
	FindByEmail(ctx context.Context, email string) (account.User, error)
}

// CourseRepository defines storage for courses. Reads expand the owning
// account's public fields into Course.Owner.
type CourseRepository interface {
	Create(ctx context.Context, course courses.Course) error
	FindByID(ctx context.Context, id string) (courses.Course, error)
	FindAll(ctx context.Context) ([]courses.Course, error)

	// Update writes the mutable fields of an already-merged course.
	Update(ctx context.Context, course courses.Course) error

	// Delete removes a course, returning domain.ErrNotFound when the id
	// does not exist.
	Delete(ctx context.Context, id string) error
}

// Cache holds serialized owner-joined courses keyed by id. It is a
// best-effort layer: failures are logged by callers, never propagated.
type Cache interface {
	Set(ctx context.Context, id string, data []byte) error

	// Get reports ok=false on a miss without an error.
	Get(ctx context.Context, id string) (data []byte, ok bool, err error)

	Remove(ctx context.Context, id string) error
}
