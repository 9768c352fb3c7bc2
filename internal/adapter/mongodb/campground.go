package mongodb

import (
	"context"
	"fmt"
	"regexp"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/heartmarshall/yelpcamp/internal/domain"
)

// CampgroundRepo stores campgrounds in the "campgrounds" collection.
type CampgroundRepo struct {
	campgrounds *mongo.Collection
	comments    *mongo.Collection
}

// NewCampgroundRepo creates a campground store over db.
func NewCampgroundRepo(db *mongo.Database) *CampgroundRepo {
	return &CampgroundRepo{
		campgrounds: db.Collection(campgroundsCollection),
		comments:    db.Collection(commentsCollection),
	}
}

// NameFilter builds a case-insensitive literal substring match on name.
// Regex metacharacters in term are escaped here, once.
func NameFilter(term string) bson.M {
	return bson.M{"name": primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}}
}

// Find returns campgrounds in creation order, optionally filtered by name.
func (r *CampgroundRepo) Find(ctx context.Context, filter domain.CampgroundFilter) ([]domain.Campground, error) {
	query := bson.M{}
	if filter.NameContains != nil && *filter.NameContains != "" {
		query = NameFilter(*filter.NameContains)
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := r.campgrounds.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("find campgrounds: %w", err)
	}

	var docs []campgroundDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode campgrounds: %w", err)
	}

	out := make([]domain.Campground, 0, len(docs))
	for _, d := range docs {
		out = append(out, *d.toDomain())
	}
	return out, nil
}

// FindByID returns a campground by id.
func (r *CampgroundRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Campground, error) {
	var doc campgroundDoc
	if err := r.campgrounds.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		return nil, mapError(err, "campground", id)
	}
	return doc.toDomain(), nil
}

// Populate resolves c.CommentIDs into c.Comments, keeping list order.
func (r *CampgroundRepo) Populate(ctx context.Context, c *domain.Campground) error {
	c.Comments = []domain.Comment{}
	if len(c.CommentIDs) == 0 {
		return nil
	}

	cur, err := r.comments.Find(ctx, bson.M{"_id": bson.M{"$in": idStrings(c.CommentIDs)}})
	if err != nil {
		return mapError(err, "campground", c.ID)
	}

	var docs []commentDoc
	if err := cur.All(ctx, &docs); err != nil {
		return fmt.Errorf("decode comments: %w", err)
	}

	byID := make(map[uuid.UUID]domain.Comment, len(docs))
	for _, d := range docs {
		cm := d.toDomain()
		byID[cm.ID] = *cm
	}
	for _, id := range c.CommentIDs {
		if cm, ok := byID[id]; ok {
			c.Comments = append(c.Comments, cm)
		}
	}
	return nil
}

// Create inserts a campground with a fresh id.
func (r *CampgroundRepo) Create(ctx context.Context, c *domain.Campground) (*domain.Campground, error) {
	ts := now()
	doc := campgroundDoc{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Image:       c.Image,
		Description: c.Description,
		Price:       c.Price,
		Location:    c.Location,
		Lat:         c.Lat,
		Lng:         c.Lng,
		Author:      toAuthorDoc(c.Author),
		Comments:    idStrings(c.CommentIDs),
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}

	if _, err := r.campgrounds.InsertOne(ctx, doc); err != nil {
		return nil, mapError(err, "campground", parseID(doc.ID))
	}
	return doc.toDomain(), nil
}

// UpdateByID $sets the editable field set and returns the updated record.
func (r *CampgroundRepo) UpdateByID(ctx context.Context, id uuid.UUID, f domain.CampgroundFields) (*domain.Campground, error) {
	update := bson.M{"$set": bson.M{
		"name":        f.Name,
		"image":       f.Image,
		"description": f.Description,
		"price":       f.Price,
		"location":    f.Location,
		"lat":         f.Lat,
		"lng":         f.Lng,
		"updated_at":  now(),
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc campgroundDoc
	if err := r.campgrounds.FindOneAndUpdate(ctx, bson.M{"_id": id.String()}, update, opts).Decode(&doc); err != nil {
		return nil, mapError(err, "campground", id)
	}
	return doc.toDomain(), nil
}

// DeleteByID removes a campground and returns the removed record.
func (r *CampgroundRepo) DeleteByID(ctx context.Context, id uuid.UUID) (*domain.Campground, error) {
	var doc campgroundDoc
	if err := r.campgrounds.FindOneAndDelete(ctx, bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		return nil, mapError(err, "campground", id)
	}
	return doc.toDomain(), nil
}

// AppendComment pushes commentID onto the comment list.
func (r *CampgroundRepo) AppendComment(ctx context.Context, campgroundID, commentID uuid.UUID) error {
	return r.updateComments(ctx, campgroundID, bson.M{"$push": bson.M{"comments": commentID.String()}})
}

// RemoveComment pulls commentID from the comment list.
func (r *CampgroundRepo) RemoveComment(ctx context.Context, campgroundID, commentID uuid.UUID) error {
	return r.updateComments(ctx, campgroundID, bson.M{"$pull": bson.M{"comments": commentID.String()}})
}

func (r *CampgroundRepo) updateComments(ctx context.Context, campgroundID uuid.UUID, update bson.M) error {
	update["$set"] = bson.M{"updated_at": now()}

	res, err := r.campgrounds.UpdateOne(ctx, bson.M{"_id": campgroundID.String()}, update)
	if err != nil {
		return mapError(err, "campground", campgroundID)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("campground %s: %w", campgroundID, domain.ErrNotFound)
	}
	return nil
}
