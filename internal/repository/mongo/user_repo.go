package mongo

import (
	"context"
	"errors"
	"hermesoftware/byklab-api/internal/domain"
	"hermesoftware/byklab-api/internal/repository" // Import the repository interfaces package

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const userCollectionName = "users"

// mongoUserRepository implements the repository.UserRepository interface using MongoDB.
type mongoUserRepository struct {
	collection *mongo.Collection
}

// NewMongoUserRepository creates a new instance of mongoUserRepository.
func NewMongoUserRepository(db *mongo.Database) repository.UserRepository {
	return &mongoUserRepository{
		collection: db.Collection(userCollectionName),
	}
}

// Create inserts a new user. The caller assigns the id and timestamps.
func (r *mongoUserRepository) Create(ctx context.Context, user *domain.User) error {
	if user.ID == "" || user.Email == "" || user.PasswordHash == "" {
		return errors.New("user id, email and password hash are required")
	}

	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		// Only reachable when the unique email index exists.
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateKey
		}
		return err
	}
	return nil
}

// GetByEmail retrieves a user by exact email match.
func (r *mongoUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	filter := bson.M{"email": email}
	opts := options.FindOne().SetProjection(bson.M{"_id": 0})

	err := r.collection.FindOne(ctx, filter, opts).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
