package repository

import (
	"context"

	"hermesoftware/byklab-api/internal/domain"
)

// Result caps applied by catalog listings.
const (
	CatalogListLimit     = 100
	MuscleGroupListLimit = 50
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicateKey = RepositoryError("duplicate key")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	// Create stores the full record, password hash included.
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// ExerciseRepository defines the interface for the exercise catalog.
type ExerciseRepository interface {
	List(ctx context.Context, limit int64) ([]domain.Exercise, error)
	ListByMuscleGroup(ctx context.Context, muscleGroup string, limit int64) ([]domain.Exercise, error)
	// ReplaceAll deletes every exercise and inserts the given set.
	ReplaceAll(ctx context.Context, exercises []domain.Exercise) error
}

// BlogPostRepository defines the interface for the blog catalog.
type BlogPostRepository interface {
	List(ctx context.Context, limit int64) ([]domain.BlogPost, error)
	GetByID(ctx context.Context, id string) (*domain.BlogPost, error)
	// ReplaceAll deletes every post and inserts the given set.
	ReplaceAll(ctx context.Context, posts []domain.BlogPost) error
}
