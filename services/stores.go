package services

import (
	"context"

	"github.com/sherryhehe/fashion-api/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Dimension names a product field whose values group products into catalog
// buckets. Grouping is by exact name string, not by id.
type Dimension string

const (
	DimensionBrand    Dimension = "brand"
	DimensionCategory Dimension = "category"
	DimensionStyle    Dimension = "style"
)

// Dimensions lists every product dimension a mutation can touch.
var Dimensions = []Dimension{DimensionBrand, DimensionCategory, DimensionStyle}

// The store interfaces are defined here, on the consumer side; the repository
// package provides the MongoDB implementations. Missing documents surface as
// errors wrapping ErrNotFound.

type ProductStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	// CountByDimension counts active products whose dimension field equals
	// name exactly.
	CountByDimension(ctx context.Context, dim Dimension, name string) (int64, error)
	SetRating(ctx context.Context, id primitive.ObjectID, rating float64, reviewCount int) error
	SetReviews(ctx context.Context, id primitive.ObjectID, reviews []models.EmbeddedReview) error
	IncrementSales(ctx context.Context, id primitive.ObjectID, by int) error
}

type CatalogStore interface {
	// SetProductCount writes the recomputed count onto the catalog entity
	// matched by name. When no entity has that name the write is skipped
	// silently; nothing is created.
	SetProductCount(ctx context.Context, dim Dimension, name string, count int64) error
}

type ReviewStore interface {
	FindByProduct(ctx context.Context, productID primitive.ObjectID) ([]models.Review, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Review, error)
	Insert(ctx context.Context, review *models.Review) error
	Update(ctx context.Context, review *models.Review) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type CartStore interface {
	ItemsByUser(ctx context.Context, userID string) ([]models.CartItem, error)
	Upsert(ctx context.Context, item *models.CartItem) error
	Remove(ctx context.Context, userID string, productID primitive.ObjectID) error
	ClearUser(ctx context.Context, userID string) error
}

type OrderStore interface {
	Insert(ctx context.Context, order *models.Order) error
	Count(ctx context.Context) (int64, error)
	// FindByID accepts either an object id hex or an order number.
	FindByID(ctx context.Context, id string) (*models.Order, error)
	Update(ctx context.Context, order *models.Order) error
	ListByUser(ctx context.Context, userID string) ([]models.Order, error)
	ListAll(ctx context.Context) ([]models.Order, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
