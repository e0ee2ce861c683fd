package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review lives in its own collection and points back at the product it rates.
// A product's effective review set is the union of these documents and the
// reviews embedded on the product itself.
type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProductID primitive.ObjectID `bson:"productId" json:"product_id"`
	Rating    int                `bson:"rating" json:"rating"`
	Comment   string             `bson:"comment" json:"comment"`
	Name      string             `bson:"name" json:"name"`
	Date      time.Time          `bson:"date" json:"date"`
	Verified  bool               `bson:"verified" json:"verified"`
}
