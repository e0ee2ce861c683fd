package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sherryhehe/fashion-api/models"
	"github.com/sherryhehe/fashion-api/services"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CatalogRepository serves the brand, category and style collections through
// one set of dimension-keyed methods; the three collections share a document
// shape.
type CatalogRepository struct {
	brands     *mongo.Collection
	categories *mongo.Collection
	styles     *mongo.Collection
}

func NewCatalogRepository(brands, categories, styles *mongo.Collection) *CatalogRepository {
	return &CatalogRepository{brands: brands, categories: categories, styles: styles}
}

func (r *CatalogRepository) collectionFor(dim services.Dimension) *mongo.Collection {
	switch dim {
	case services.DimensionBrand:
		return r.brands
	case services.DimensionCategory:
		return r.categories
	default:
		return r.styles
	}
}

// SetProductCount writes a recomputed count onto the entity matched by name.
// Zero matches means the entity does not exist; the write is skipped without
// error and nothing is created.
func (r *CatalogRepository) SetProductCount(ctx context.Context, dim services.Dimension, name string, count int64) error {
	update := bson.M{"$set": bson.M{
		"productCount": count,
		"updatedAt":    time.Now(),
	}}
	_, err := r.collectionFor(dim).UpdateOne(ctx, bson.M{"name": name}, update)
	if err != nil {
		return fmt.Errorf("set product count: %w", err)
	}
	return nil
}

func (r *CatalogRepository) List(ctx context.Context, dim services.Dimension) ([]models.CatalogEntity, error) {
	cursor, err := r.collectionFor(dim).Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dim, err)
	}
	defer cursor.Close(ctx)

	var entities []models.CatalogEntity
	if err := cursor.All(ctx, &entities); err != nil {
		return nil, fmt.Errorf("decode %s: %w", dim, err)
	}
	return entities, nil
}

func (r *CatalogRepository) FindByID(ctx context.Context, dim services.Dimension, id primitive.ObjectID) (*models.CatalogEntity, error) {
	var entity models.CatalogEntity
	err := r.collectionFor(dim).FindOne(ctx, bson.M{"_id": id}).Decode(&entity)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%s %s: %w", dim, id.Hex(), services.ErrNotFound)
		}
		return nil, fmt.Errorf("find %s: %w", dim, err)
	}
	return &entity, nil
}

func (r *CatalogRepository) FindByName(ctx context.Context, dim services.Dimension, name string) (*models.CatalogEntity, error) {
	var entity models.CatalogEntity
	err := r.collectionFor(dim).FindOne(ctx, bson.M{"name": name}).Decode(&entity)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%s %q: %w", dim, name, services.ErrNotFound)
		}
		return nil, fmt.Errorf("find %s: %w", dim, err)
	}
	return &entity, nil
}

func (r *CatalogRepository) Insert(ctx context.Context, dim services.Dimension, entity *models.CatalogEntity) error {
	result, err := r.collectionFor(dim).InsertOne(ctx, entity)
	if err != nil {
		return fmt.Errorf("insert %s: %w", dim, err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		entity.ID = oid
	}
	return nil
}

func (r *CatalogRepository) Update(ctx context.Context, dim services.Dimension, entity *models.CatalogEntity) error {
	entity.UpdatedAt = time.Now()
	result, err := r.collectionFor(dim).ReplaceOne(ctx, bson.M{"_id": entity.ID}, entity)
	if err != nil {
		return fmt.Errorf("update %s: %w", dim, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%s %s: %w", dim, entity.ID.Hex(), services.ErrNotFound)
	}
	return nil
}

func (r *CatalogRepository) Delete(ctx context.Context, dim services.Dimension, id primitive.ObjectID) error {
	result, err := r.collectionFor(dim).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete %s: %w", dim, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("%s %s: %w", dim, id.Hex(), services.ErrNotFound)
	}
	return nil
}
