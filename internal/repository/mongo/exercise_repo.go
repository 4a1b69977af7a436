package mongo

import (
	"context"
	"hermesoftware/byklab-api/internal/domain"
	"hermesoftware/byklab-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const exerciseCollectionName = "exercises"

// mongoExerciseRepository implements repository.ExerciseRepository
type mongoExerciseRepository struct {
	collection *mongo.Collection
}

// NewMongoExerciseRepository creates a new Exercise repository backed by MongoDB.
func NewMongoExerciseRepository(db *mongo.Database) repository.ExerciseRepository {
	return &mongoExerciseRepository{
		collection: db.Collection(exerciseCollectionName),
	}
}

// List returns up to limit exercises in natural order.
func (r *mongoExerciseRepository) List(ctx context.Context, limit int64) ([]domain.Exercise, error) {
	return r.find(ctx, bson.M{}, limit)
}

// ListByMuscleGroup returns up to limit exercises whose muscle_group matches exactly.
func (r *mongoExerciseRepository) ListByMuscleGroup(ctx context.Context, muscleGroup string, limit int64) ([]domain.Exercise, error) {
	return r.find(ctx, bson.M{"muscle_group": muscleGroup}, limit)
}

func (r *mongoExerciseRepository) find(ctx context.Context, filter bson.M, limit int64) ([]domain.Exercise, error) {
	findOptions := options.Find().
		SetProjection(bson.M{"_id": 0}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	exercises := []domain.Exercise{}
	if err = cursor.All(ctx, &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}

// ReplaceAll wipes the collection and inserts the given exercises.
// The two steps are not atomic.
func (r *mongoExerciseRepository) ReplaceAll(ctx context.Context, exercises []domain.Exercise) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if len(exercises) == 0 {
		return nil
	}

	docs := make([]interface{}, len(exercises))
	for i := range exercises {
		docs[i] = exercises[i]
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}
