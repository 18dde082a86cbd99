package service

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"go-courses-api/internal/core/domain"
	"go-courses-api/internal/core/domain/account"
)

func TestUserService_Register(t *testing.T) {
	logger := slog.Default()
	valid := account.Registration{
		FirstName:    "Joe",
		LastName:     "Smith",
		EmailAddress: "joe@smith.com",
		Password:     "joepassword",
	}

	t.Run("success hashes before persisting", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockHasher := new(MockHasher)
		svc := NewUserService(mockRepo, mockHasher, logger)

		mockHasher.On("Hash", "joepassword").Return("hashed-digest", nil)
		mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(u account.User) bool {
			return u.ID != "" &&
				u.EmailAddress == "joe@smith.com" &&
				u.PasswordHash == "hashed-digest"
		})).Return(nil)

		user, err := svc.Register(context.Background(), valid)
		assert.NoError(t, err)
		assert.NotEmpty(t, user.ID)
		assert.Equal(t, "hashed-digest", user.PasswordHash)
		mockRepo.AssertExpectations(t)
		mockHasher.AssertExpectations(t)
	})

	t.Run("validation failure skips hashing and storage", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockHasher := new(MockHasher)
		svc := NewUserService(mockRepo, mockHasher, logger)

		_, err := svc.Register(context.Background(), account.Registration{LastName: "Smith"})

		var ve *domain.ValidationError
		assert.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Messages, "First name is required")
		mockHasher.AssertNotCalled(t, "Hash", mock.Anything)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("duplicate email passes through untranslated", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockHasher := new(MockHasher)
		svc := NewUserService(mockRepo, mockHasher, logger)

		mockHasher.On("Hash", "joepassword").Return("hashed-digest", nil)
		mockRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicateEmail)

		_, err := svc.Register(context.Background(), valid)
		assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
	})

	t.Run("hasher failure aborts registration", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockHasher := new(MockHasher)
		svc := NewUserService(mockRepo, mockHasher, logger)

		mockHasher.On("Hash", "joepassword").Return("", assert.AnError)

		_, err := svc.Register(context.Background(), valid)
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
