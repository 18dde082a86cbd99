package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-courses-api/internal/core/domain"
	"go-courses-api/internal/core/domain/account"
)

// Postgres error codes this package translates into domain errors.
const (
	// uniqueViolation signals a unique index collision.
	uniqueViolation = "23505"
	// invalidTextRepresentation signals a value that cannot be cast to the
	// column type, e.g. a non-UUID string sent as a uuid parameter.
	invalidTextRepresentation = "22P02"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts the user. The email uniqueness check rides on the unique
// index, so concurrent inserts of the same address cannot both succeed.
func (r *UserRepository) Create(ctx context.Context, user account.User) error {
	query := `
		INSERT INTO users (id, first_name, last_name, email_address, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query,
		user.ID, user.FirstName, user.LastName, user.EmailAddress,
		user.PasswordHash, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (account.User, error) {
	query := `
		SELECT id, first_name, last_name, email_address, password_hash, created_at, updated_at
		FROM users WHERE email_address = $1
	`
	row := r.db.QueryRow(ctx, query, email)

	var user account.User
	err := row.Scan(&user.ID, &user.FirstName, &user.LastName, &user.EmailAddress,
		&user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return account.User{}, domain.ErrNotFound
		}
		return account.User{}, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}
