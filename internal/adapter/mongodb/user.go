package mongodb

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/heartmarshall/yelpcamp/internal/domain"
)

// UserRepo stores accounts in the "users" collection. Username uniqueness
// relies on the index created by EnsureIndexes.
type UserRepo struct {
	users *mongo.Collection
}

// NewUserRepo creates a user store over db.
func NewUserRepo(db *mongo.Database) *UserRepo {
	return &UserRepo{users: db.Collection(usersCollection)}
}

// GetByID returns a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var doc userDoc
	if err := r.users.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		return nil, mapError(err, "user", id)
	}
	return doc.toDomain(), nil
}

// GetByUsername returns a user by exact username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var doc userDoc
	if err := r.users.FindOne(ctx, bson.M{"username": username}).Decode(&doc); err != nil {
		return nil, mapError(err, "user", uuid.Nil)
	}
	return doc.toDomain(), nil
}

// Create inserts a user. A nil ID is replaced with a fresh one.
func (r *UserRepo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	id := u.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	ts := now()
	doc := userDoc{
		ID:           id.String(),
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		AvatarURL:    u.AvatarURL,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}

	if _, err := r.users.InsertOne(ctx, doc); err != nil {
		return nil, mapError(err, "user", id)
	}
	return doc.toDomain(), nil
}
