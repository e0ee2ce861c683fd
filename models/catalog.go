package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CatalogEntity is the shared document shape of the brand, category and style
// collections: an identity, a unique display name, and a derived product
// count. Products reference these by name, not by id, so a rename does not
// cascade — the count is only trustworthy right after a reconciliation pass.
type CatalogEntity struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Slug         string             `bson:"slug" json:"slug"`
	Image        string             `bson:"image,omitempty" json:"image"`
	Description  string             `bson:"description,omitempty" json:"description"`
	ProductCount int64              `bson:"productCount" json:"product_count"` // derived
	IsActive     bool               `bson:"isActive" json:"is_active"`
	CreatedAt    time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updated_at"`
}
