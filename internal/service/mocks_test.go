package service

import (
	"context"
	"sync"

	"hermesoftware/byklab-api/internal/domain"
	"hermesoftware/byklab-api/internal/repository"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockExerciseRepository is a mock implementation of ExerciseRepository.
type MockExerciseRepository struct {
	mock.Mock
}

func (m *MockExerciseRepository) List(ctx context.Context, limit int64) ([]domain.Exercise, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Exercise), args.Error(1)
}

func (m *MockExerciseRepository) ListByMuscleGroup(ctx context.Context, muscleGroup string, limit int64) ([]domain.Exercise, error) {
	args := m.Called(ctx, muscleGroup, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Exercise), args.Error(1)
}

func (m *MockExerciseRepository) ReplaceAll(ctx context.Context, exercises []domain.Exercise) error {
	args := m.Called(ctx, exercises)
	return args.Error(0)
}

// MockBlogPostRepository is a mock implementation of BlogPostRepository.
type MockBlogPostRepository struct {
	mock.Mock
}

func (m *MockBlogPostRepository) List(ctx context.Context, limit int64) ([]domain.BlogPost, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BlogPost), args.Error(1)
}

func (m *MockBlogPostRepository) GetByID(ctx context.Context, id string) (*domain.BlogPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BlogPost), args.Error(1)
}

func (m *MockBlogPostRepository) ReplaceAll(ctx context.Context, posts []domain.BlogPost) error {
	args := m.Called(ctx, posts)
	return args.Error(0)
}

// memStore is an in-memory stand-in for the Mongo repositories, used where a
// test needs state to carry across calls.
type memStore struct {
	mu        sync.Mutex
	users     []domain.User
	exercises []domain.Exercise
	posts     []domain.BlogPost
}

type memUserRepo struct{ *memStore }
type memExerciseRepo struct{ *memStore }
type memBlogPostRepo struct{ *memStore }

func (r memUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateKey
		}
	}
	r.users = append(r.users, *user)
	return nil
}

func (r memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r memExerciseRepo) List(_ context.Context, limit int64) ([]domain.Exercise, error) {
	return r.filterExercises(func(domain.Exercise) bool { return true }, limit), nil
}

func (r memExerciseRepo) ListByMuscleGroup(_ context.Context, muscleGroup string, limit int64) ([]domain.Exercise, error) {
	return r.filterExercises(func(ex domain.Exercise) bool { return ex.MuscleGroup == muscleGroup }, limit), nil
}

func (r memExerciseRepo) filterExercises(keep func(domain.Exercise) bool, limit int64) []domain.Exercise {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.Exercise{}
	for _, ex := range r.exercises {
		if int64(len(out)) == limit {
			break
		}
		if keep(ex) {
			out = append(out, ex)
		}
	}
	return out
}

func (r memExerciseRepo) ReplaceAll(_ context.Context, exercises []domain.Exercise) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.exercises = append([]domain.Exercise(nil), exercises...)
	return nil
}

func (r memBlogPostRepo) List(_ context.Context, limit int64) ([]domain.BlogPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.BlogPost{}
	for _, p := range r.posts {
		if int64(len(out)) == limit {
			break
		}
		out = append(out, p)
	}
	return out, nil
}

func (r memBlogPostRepo) GetByID(_ context.Context, id string) (*domain.BlogPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.posts {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r memBlogPostRepo) ReplaceAll(_ context.Context, posts []domain.BlogPost) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.posts = append([]domain.BlogPost(nil), posts...)
	return nil
}
