package api

import (
	"context"

	"hermesoftware/byklab-api/internal/domain"
	"hermesoftware/byklab-api/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, email, password, fullName string) (*domain.User, error) {
	args := m.Called(ctx, email, password, fullName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockExerciseService struct {
	mock.Mock
}

func (m *MockExerciseService) ListExercises(ctx context.Context) ([]domain.Exercise, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Exercise), args.Error(1)
}

func (m *MockExerciseService) ListByMuscleGroup(ctx context.Context, muscleGroup string) ([]domain.Exercise, error) {
	args := m.Called(ctx, muscleGroup)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Exercise), args.Error(1)
}

type MockBlogService struct {
	mock.Mock
}

func (m *MockBlogService) ListPosts(ctx context.Context) ([]domain.BlogPost, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BlogPost), args.Error(1)
}

func (m *MockBlogService) GetPost(ctx context.Context, id string) (*domain.BlogPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BlogPost), args.Error(1)
}

type MockSeedService struct {
	mock.Mock
}

func (m *MockSeedService) Seed(ctx context.Context) (*service.SeedResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SeedResult), args.Error(1)
}

type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
