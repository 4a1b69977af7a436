package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes for every collection. Call this once
// during application startup. A failure on one collection does not stop the
// others; all failures are returned joined.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	return errors.Join(
		EnsureUserIndexes(ctx, db.Collection(userCollectionName)),
		EnsureExerciseIndexes(ctx, db.Collection(exerciseCollectionName)),
		EnsureBlogPostIndexes(ctx, db.Collection(blogPostCollectionName)),
	)
}

// EnsureUserIndexes makes email unique. Signup checks for an existing email
// before inserting; the index closes the window between check and insert.
func EnsureUserIndexes(ctx context.Context, collection *mongo.Collection) error {
	return createIndexes(ctx, collection, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
}

// EnsureExerciseIndexes creates necessary indexes for the exercises collection.
func EnsureExerciseIndexes(ctx context.Context, collection *mongo.Collection) error {
	return createIndexes(ctx, collection, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			// Filter key for the by-muscle listing
			Keys: bson.D{{Key: "muscle_group", Value: 1}},
		},
	})
}

// EnsureBlogPostIndexes creates necessary indexes for the blog_posts collection.
func EnsureBlogPostIndexes(ctx context.Context, collection *mongo.Collection) error {
	return createIndexes(ctx, collection, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
}

func createIndexes(ctx context.Context, collection *mongo.Collection, models []mongo.IndexModel) error {
	if _, err := collection.Indexes().CreateMany(ctx, models); err != nil {
		return fmt.Errorf("create indexes for %s: %w", collection.Name(), err)
	}
	return nil
}
