package mongo

import (
	"context"
	"errors"
	"hermesoftware/byklab-api/internal/domain"
	"hermesoftware/byklab-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const blogPostCollectionName = "blog_posts"

// mongoBlogPostRepository implements repository.BlogPostRepository
type mongoBlogPostRepository struct {
	collection *mongo.Collection
}

// NewMongoBlogPostRepository creates a new BlogPost repository backed by MongoDB.
func NewMongoBlogPostRepository(db *mongo.Database) repository.BlogPostRepository {
	return &mongoBlogPostRepository{
		collection: db.Collection(blogPostCollectionName),
	}
}

// List returns up to limit posts in natural order. published_at may be stored
// as a string or a datetime; domain.Timestamp handles both.
func (r *mongoBlogPostRepository) List(ctx context.Context, limit int64) ([]domain.BlogPost, error) {
	findOptions := options.Find().
		SetProjection(bson.M{"_id": 0}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := []domain.BlogPost{}
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetByID retrieves a post by its id field.
func (r *mongoBlogPostRepository) GetByID(ctx context.Context, id string) (*domain.BlogPost, error) {
	var post domain.BlogPost
	opts := options.FindOne().SetProjection(bson.M{"_id": 0})

	err := r.collection.FindOne(ctx, bson.M{"id": id}, opts).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// ReplaceAll wipes the collection and inserts the given posts.
func (r *mongoBlogPostRepository) ReplaceAll(ctx context.Context, posts []domain.BlogPost) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if len(posts) == 0 {
		return nil
	}

	docs := make([]interface{}, len(posts))
	for i := range posts {
		docs[i] = posts[i]
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}
