package service

import (
	"context"
	"fmt"

	"hermesoftware/byklab-api/internal/domain"
	"hermesoftware/byklab-api/internal/metrics"
	"hermesoftware/byklab-api/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// SeedMessage is reported after a successful seed.
const SeedMessage = "Database seeded successfully"

// SeedResult summarizes a seed run.
type SeedResult struct {
	Message   string `json:"message"`
	Exercises int    `json:"exercises"`
	BlogPosts int    `json:"blog_posts"`
}

// SeedService replaces the exercise and blog catalogs with the starter set.
// Concurrent runs are not serialized; the last ReplaceAll wins per collection.
type SeedService interface {
	Seed(ctx context.Context) (*SeedResult, error)
}

type seedService struct {
	exerciseRepo repository.ExerciseRepository
	postRepo     repository.BlogPostRepository
	log          logrus.FieldLogger
}

func NewSeedService(exerciseRepo repository.ExerciseRepository, postRepo repository.BlogPostRepository, log logrus.FieldLogger) SeedService {
	return &seedService{
		exerciseRepo: exerciseRepo,
		postRepo:     postRepo,
		log:          log,
	}
}

func (s *seedService) Seed(ctx context.Context) (result *SeedResult, err error) {
	defer func() { metrics.RecordSeed(err == nil) }()

	exercises := make([]domain.Exercise, len(seedExercises))
	for i, ex := range seedExercises {
		ex.ID = uuid.NewString()
		exercises[i] = ex
	}
	if err = s.exerciseRepo.ReplaceAll(ctx, exercises); err != nil {
		return nil, fmt.Errorf("seed exercises: %w", err)
	}

	publishedAt := domain.Now()
	posts := make([]domain.BlogPost, len(seedBlogPosts))
	for i, post := range seedBlogPosts {
		post.ID = uuid.NewString()
		post.PublishedAt = publishedAt
		posts[i] = post
	}
	if err = s.postRepo.ReplaceAll(ctx, posts); err != nil {
		return nil, fmt.Errorf("seed blog posts: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"exercises":  len(exercises),
		"blog_posts": len(posts),
	}).Info("catalog seeded")

	return &SeedResult{
		Message:   SeedMessage,
		Exercises: len(exercises),
		BlogPosts: len(posts),
	}, nil
}
