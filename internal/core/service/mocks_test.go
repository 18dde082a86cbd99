package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"go-courses-api/internal/core/domain/account"
	"go-courses-api/internal/core/domain/courses"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user account.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (account.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(account.User), args.Error(1)
}

type MockCourseRepository struct {
	mock.Mock
}

func (m *MockCourseRepository) Create(ctx context.Context, course courses.Course) error {
	args := m.Called(ctx, course)
	return args.Error(0)
}

func (m *MockCourseRepository) FindByID(ctx context.Context, id string) (courses.Course, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(courses.Course), args.Error(1)
}

func (m *MockCourseRepository) FindAll(ctx context.Context) ([]courses.Course, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]courses.Course), args.Error(1)
}

func (m *MockCourseRepository) Update(ctx context.Context, course courses.Course) error {
	args := m.Called(ctx, course)
	return args.Error(0)
}

func (m *MockCourseRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockHasher struct {
	mock.Mock
}

func (m *MockHasher) Hash(secret string) (string, error) {
	args := m.Called(secret)
	return args.String(0), args.Error(1)
}

func (m *MockHasher) Compare(secret, digest string) error {
	args := m.Called(secret, digest)
	return args.Error(0)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Set(ctx context.Context, id string, data []byte) error {
	args := m.Called(ctx, id, data)
	return args.Error(0)
}

func (m *MockCache) Get(ctx context.Context, id string) ([]byte, bool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.Bool(1), args.Error(2)
}

func (m *MockCache) Remove(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
