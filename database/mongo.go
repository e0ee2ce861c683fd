package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connect opens a MongoDB connection and verifies it with a ping.
func Connect(ctx context.Context, uri, database string) (*mongo.Database, error) {
	clientOpts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(100)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return client.Database(database), nil
}

// Collections bundles the handles every repository is built from.
type Collections struct {
	Products   *mongo.Collection
	Brands     *mongo.Collection
	Categories *mongo.Collection
	Styles     *mongo.Collection
	Reviews    *mongo.Collection
	CartItems  *mongo.Collection
	Orders     *mongo.Collection
}

func NewCollections(db *mongo.Database) *Collections {
	return &Collections{
		Products:   db.Collection("products"),
		Brands:     db.Collection("brands"),
		Categories: db.Collection("categories"),
		Styles:     db.Collection("styles"),
		Reviews:    db.Collection("reviews"),
		CartItems:  db.Collection("cart_items"),
		Orders:     db.Collection("orders"),
	}
}
