// Package mongodb implements the record stores on MongoDB, one collection per
// entity. Campground documents embed an author snapshot and the ordered list
// of comment ids.
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/heartmarshall/yelpcamp/internal/config"
)

// Collection names.
const (
	campgroundsCollection = "campgrounds"
	commentsCollection    = "comments"
	usersCollection       = "users"
)

// Connect opens a client for cfg.DSN, pings the primary for fail-fast
// validation, and returns the database named cfg.Name.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*mongo.Client, *mongo.Database, error) {
	opts := options.Client().
		ApplyURI(cfg.DSN).
		SetMaxPoolSize(uint64(cfg.MaxConns)).
		SetMinPoolSize(uint64(cfg.MinConns)).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ping mongo: %w", err)
	}

	return client, client.Database(cfg.Name), nil
}

// EnsureIndexes creates the indexes the stores rely on. It is idempotent.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("users_username_key"),
	})
	if err != nil {
		return fmt.Errorf("create users index: %w", err)
	}

	_, err = db.Collection(campgroundsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "created_at", Value: 1}},
		Options: options.Index().SetName("campgrounds_created_at_idx"),
	})
	if err != nil {
		return fmt.Errorf("create campgrounds index: %w", err)
	}

	return nil
}

// NoTx runs fn directly. MongoDB writes here are atomic per document only,
// so callers get sequential execution without a transaction.
type NoTx struct{}

// RunInTx calls fn with ctx.
func (NoTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// Pinger adapts a client to the readiness check.
type Pinger struct {
	client *mongo.Client
}

// NewPinger creates a Pinger for client.
func NewPinger(client *mongo.Client) *Pinger {
	return &Pinger{client: client}
}

// Ping checks the primary is reachable.
func (p *Pinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx, readpref.Primary())
}
