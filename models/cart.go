package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is ephemeral: it exists until checkout or explicit removal and is
// never an authoritative price record. Price is always re-read from the
// product at use time.
type CartItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"userId" json:"user_id"`
	ProductID primitive.ObjectID `bson:"productId" json:"product_id"`
	Quantity  int                `bson:"quantity" json:"quantity"`
	Size      string             `bson:"size,omitempty" json:"size"`
	Color     string             `bson:"color,omitempty" json:"color"`
	AddedAt   time.Time          `bson:"addedAt" json:"added_at"`
}
