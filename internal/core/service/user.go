package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"go-courses-api/internal/core/domain/account"
	"go-courses-api/internal/core/ports"
)

type UserService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	logger *slog.Logger
}

func NewUserService(repo ports.UserRepository, hasher ports.PasswordHasher, logger *slog.Logger) *UserService {
	return &UserService{
		repo:   repo,
		hasher: hasher,
		logger: logger,
	}
}

// Register validates the submission, hashes the password and persists the
// account. Ordering matters: the plaintext password must be gone before the
// repository is touched.
func (s *UserService) Register(ctx context.Context, reg account.Registration) (account.User, error) {
	if err := reg.Validate(); err != nil {
		return account.User{}, err
	}

	hashed, err := s.hasher.Hash(reg.Password)
	if err != nil {
		return account.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := account.User{
		ID:           uuid.NewString(),
		FirstName:    reg.FirstName,
		LastName:     reg.LastName,
		EmailAddress: reg.EmailAddress,
		PasswordHash: hashed,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return account.User{}, err
	}

	s.logger.InfoContext(ctx, "account created", "id", user.ID)
	return user, nil
}
