package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EmbeddedReview is a review stored directly inside the product document.
// The ID is a plain string because legacy documents carry numeric ids.
type EmbeddedReview struct {
	ID       string    `bson:"_id" json:"id"`
	Rating   int       `bson:"rating" json:"rating"`
	Comment  string    `bson:"comment" json:"comment"`
	Name     string    `bson:"name" json:"name"`
	Date     time.Time `bson:"date" json:"date"`
	Verified bool      `bson:"verified" json:"verified"`
}

type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Description   string             `bson:"description" json:"description"`
	Category      string             `bson:"category,omitempty" json:"category"` // display name, not a foreign key
	Brand         string             `bson:"brand,omitempty" json:"brand"`
	Style         string             `bson:"style,omitempty" json:"style"`
	Price         float64            `bson:"price" json:"price"`
	OriginalPrice float64            `bson:"originalPrice,omitempty" json:"original_price"`
	Discount      float64            `bson:"discount,omitempty" json:"discount"`
	Stock         int                `bson:"stock" json:"stock"`
	Sizes         []string           `bson:"sizes,omitempty" json:"sizes"`
	Colors        []string           `bson:"colors,omitempty" json:"colors"`
	Images        []string           `bson:"images,omitempty" json:"images"`
	Rating        float64            `bson:"rating" json:"rating"`            // derived, mean of all reviews
	ReviewCount   int                `bson:"reviewCount" json:"review_count"` // derived
	Reviews       []EmbeddedReview   `bson:"reviews" json:"reviews"`
	SalesCount    int                `bson:"salesCount" json:"sales_count"`
	IsActive      bool               `bson:"isActive" json:"is_active"`
	CreatedAt     time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updated_at"`
}
