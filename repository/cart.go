package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/sherryhehe/fashion-api/models"
	"github.com/sherryhehe/fashion-api/services"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CartRepository stores one document per cart line, keyed by user and
// product. Upserting the same product again replaces the line.
type CartRepository struct {
	coll *mongo.Collection
}

func NewCartRepository(coll *mongo.Collection) *CartRepository {
	return &CartRepository{coll: coll}
}

func (r *CartRepository) ItemsByUser(ctx context.Context, userID string) ([]models.CartItem, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID},
		options.Find().SetSort(bson.D{{Key: "addedAt", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	defer cursor.Close(ctx)

	var items []models.CartItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode cart items: %w", err)
	}
	return items, nil
}

func (r *CartRepository) Upsert(ctx context.Context, item *models.CartItem) error {
	item.AddedAt = time.Now()

	filter := bson.M{"userId": item.UserID, "productId": item.ProductID}
	update := bson.M{"$set": bson.M{
		"quantity": item.Quantity,
		"size":     item.Size,
		"color":    item.Color,
		"addedAt":  item.AddedAt,
	}}
	opts := options.Update().SetUpsert(true)

	_, err := r.coll.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return fmt.Errorf("upsert cart item: %w", err)
	}
	return nil
}

func (r *CartRepository) Remove(ctx context.Context, userID string, productID primitive.ObjectID) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"userId": userID, "productId": productID})
	if err != nil {
		return fmt.Errorf("remove cart item: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("cart item: %w", services.ErrNotFound)
	}
	return nil
}

func (r *CartRepository) ClearUser(ctx context.Context, userID string) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{"userId": userID})
	if err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
