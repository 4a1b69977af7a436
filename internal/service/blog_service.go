package service

import (
	"context"
	"errors"
	"fmt"

	"hermesoftware/byklab-api/internal/domain"
	"hermesoftware/byklab-api/internal/repository"
	"hermesoftware/byklab-api/internal/storage"
)

var ErrPostNotFound = errors.New("Post not found")

// BlogService reads the blog catalog.
type BlogService interface {
	ListPosts(ctx context.Context) ([]domain.BlogPost, error)
	GetPost(ctx context.Context, id string) (*domain.BlogPost, error)
}

type blogService struct {
	postRepo repository.BlogPostRepository
	media    storage.MediaResolver
}

func NewBlogService(postRepo repository.BlogPostRepository, media storage.MediaResolver) BlogService {
	return &blogService{postRepo: postRepo, media: media}
}

func (s *blogService) ListPosts(ctx context.Context) ([]domain.BlogPost, error) {
	posts, err := s.postRepo.List(ctx, repository.CatalogListLimit)
	if err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}
	if posts == nil {
		return []domain.BlogPost{}, nil
	}
	for i := range posts {
		posts[i].Image = s.resolve(ctx, posts[i].Image)
	}
	return posts, nil
}

func (s *blogService) GetPost(ctx context.Context, id string) (*domain.BlogPost, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("get blog post %s: %w", id, err)
	}
	post.Image = s.resolve(ctx, post.Image)
	return post, nil
}

func (s *blogService) resolve(ctx context.Context, ref string) string {
	if s.media == nil {
		return ref
	}
	return s.media.Resolve(ctx, ref)
}
