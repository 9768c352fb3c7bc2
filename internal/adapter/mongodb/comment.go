package mongodb

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/heartmarshall/yelpcamp/internal/domain"
)

// CommentRepo stores comments in the "comments" collection.
type CommentRepo struct {
	comments *mongo.Collection
}

// NewCommentRepo creates a comment store over db.
func NewCommentRepo(db *mongo.Database) *CommentRepo {
	return &CommentRepo{comments: db.Collection(commentsCollection)}
}

// FindByID returns a comment by id.
func (r *CommentRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	var doc commentDoc
	if err := r.comments.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		return nil, mapError(err, "comment", id)
	}
	return doc.toDomain(), nil
}

// Create inserts a comment with a fresh id.
func (r *CommentRepo) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	ts := now()
	doc := commentDoc{
		ID:        uuid.NewString(),
		Text:      c.Text,
		Author:    toAuthorDoc(c.Author),
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	if _, err := r.comments.InsertOne(ctx, doc); err != nil {
		return nil, mapError(err, "comment", parseID(doc.ID))
	}
	return doc.toDomain(), nil
}

// UpdateByID replaces the comment text.
func (r *CommentRepo) UpdateByID(ctx context.Context, id uuid.UUID, text string) (*domain.Comment, error) {
	update := bson.M{"$set": bson.M{"text": text, "updated_at": now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc commentDoc
	if err := r.comments.FindOneAndUpdate(ctx, bson.M{"_id": id.String()}, update, opts).Decode(&doc); err != nil {
		return nil, mapError(err, "comment", id)
	}
	return doc.toDomain(), nil
}

// DeleteByID removes a comment and returns the removed record.
func (r *CommentRepo) DeleteByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	var doc commentDoc
	if err := r.comments.FindOneAndDelete(ctx, bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		return nil, mapError(err, "comment", id)
	}
	return doc.toDomain(), nil
}

// DeleteMany removes every comment whose id is in ids.
func (r *CommentRepo) DeleteMany(ctx context.Context, ids []uuid.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	res, err := r.comments.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": idStrings(ids)}})
	if err != nil {
		return 0, fmt.Errorf("delete comments: %w", err)
	}
	return int(res.DeletedCount), nil
}
