package service

import (
	"context"
	"fmt"

	"hermesoftware/byklab-api/internal/domain"
	"hermesoftware/byklab-api/internal/repository"
	"hermesoftware/byklab-api/internal/storage"
)

// ExerciseService reads the exercise catalog.
type ExerciseService interface {
	ListExercises(ctx context.Context) ([]domain.Exercise, error)
	// ListByMuscleGroup matches muscle_group exactly (case and diacritics included).
	ListByMuscleGroup(ctx context.Context, muscleGroup string) ([]domain.Exercise, error)
}

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
	media        storage.MediaResolver
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository, media storage.MediaResolver) ExerciseService {
	return &exerciseService{
		exerciseRepo: exerciseRepo,
		media:        media,
	}
}

func (s *exerciseService) ListExercises(ctx context.Context) ([]domain.Exercise, error) {
	exercises, err := s.exerciseRepo.List(ctx, repository.CatalogListLimit)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	return s.resolveMedia(ctx, exercises), nil
}

func (s *exerciseService) ListByMuscleGroup(ctx context.Context, muscleGroup string) ([]domain.Exercise, error) {
	exercises, err := s.exerciseRepo.ListByMuscleGroup(ctx, muscleGroup, repository.MuscleGroupListLimit)
	if err != nil {
		return nil, fmt.Errorf("list exercises by muscle group %q: %w", muscleGroup, err)
	}
	return s.resolveMedia(ctx, exercises), nil
}

func (s *exerciseService) resolveMedia(ctx context.Context, exercises []domain.Exercise) []domain.Exercise {
	if exercises == nil {
		return []domain.Exercise{}
	}
	if s.media == nil {
		return exercises
	}
	for i := range exercises {
		exercises[i].VideoURL = s.media.Resolve(ctx, exercises[i].VideoURL)
		exercises[i].Thumbnail = s.media.Resolve(ctx, exercises[i].Thumbnail)
	}
	return exercises
}
