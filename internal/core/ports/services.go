package ports

import (
	"context"

	"go-courses-api/internal/core/domain/account"
	"go-courses-api/internal/core/domain/courses"
)

// PasswordHasher produces and verifies one-way digests of credential
// secrets. Implementations must be salted and deliberately slow.
type PasswordHasher interface {
	Hash(secret string) (string, error)

	// Compare returns nil when the secret matches the digest. It must not
	// leak timing information correlated with partial matches.
	Compare(secret, digest string) error
}

// Authenticator verifies a credential pair against stored accounts.
type Authenticator interface {
	// Authenticate returns the matching account, or domain.ErrAccessDenied
	// for both an unknown email and a wrong secret. The caller cannot
	// distinguish the two cases; the detail is logged server-side only.
	Authenticate(ctx context.Context, email, secret string) (account.User, error)
}

// UserService handles account registration.
type UserService interface {
	// Register validates the submission, hashes the password and persists
	// the new account. The plaintext password never reaches storage.
	Register(ctx context.Context, reg account.Registration) (account.User, error)
}

// CourseService defines the application logic for courses.
type CourseService interface {
	Create(ctx context.Context, course courses.Course, ownerID string) (courses.Course, error)
	FindByID(ctx context.Context, id string) (courses.Course, error)
	FindAll(ctx context.Context) ([]courses.Course, error)
	Update(ctx context.Context, id string, upd courses.Update) error
	Delete(ctx context.Context, id string) error
}
