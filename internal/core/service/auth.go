package service

import (
	"context"
	"errors"
	"log/slog"

	"go-courses-api/internal/core/domain"
	"go-courses-api/internal/core/domain/account"
	"go-courses-api/internal/core/ports"
)

type AuthService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	logger *slog.Logger
}

func NewAuthService(repo ports.UserRepository, hasher ports.PasswordHasher, logger *slog.Logger) *AuthService {
	return &AuthService{
		repo:   repo,
		hasher: hasher,
		logger: logger,
	}
}

// Authenticate resolves the account for a credential pair. Unknown email and
// wrong password are indistinguishable to the caller; the real cause is only
// logged here.
func (s *AuthService) Authenticate(ctx context.Context, email, secret string) (account.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.WarnContext(ctx, "authentication failed: unknown email", "email", email)
			return account.User{}, domain.ErrAccessDenied
		}
		return account.User{}, err
	}

	if err := s.hasher.Compare(secret, user.PasswordHash); err != nil {
		s.logger.WarnContext(ctx, "authentication failed: password mismatch", "email", email)
		return account.User{}, domain.ErrAccessDenied
	}

	return user, nil
}
