package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string
type PaymentStatus string

const (
	// Order statuses
	OrderStatusPending    OrderStatus = "pending"    // Order placed, awaiting processing
	OrderStatusProcessing OrderStatus = "processing" // Being prepared
	OrderStatusShipped    OrderStatus = "shipped"    // Out for delivery
	OrderStatusDelivered  OrderStatus = "delivered"  // Customer received the item (terminal)
	OrderStatusCancelled  OrderStatus = "cancelled"  // Cancelled before delivery (terminal)

	// Payment statuses
	PaymentStatusPending  PaymentStatus = "pending"  // Payment not completed yet
	PaymentStatusPaid     PaymentStatus = "paid"     // Payment completed successfully
	PaymentStatusFailed   PaymentStatus = "failed"   // Payment attempt failed
	PaymentStatusRefunded PaymentStatus = "refunded" // Money returned to customer
)

// OrderItem is an immutable snapshot of a product line captured at order
// time. It is never re-derived from the live product afterwards.
type OrderItem struct {
	ProductID    primitive.ObjectID `bson:"productId" json:"product_id"`
	ProductName  string             `bson:"productName" json:"product_name"`
	ProductImage string             `bson:"productImage,omitempty" json:"product_image"`
	Price        float64            `bson:"price" json:"price"`
	Quantity     int                `bson:"quantity" json:"quantity"`
	Size         string             `bson:"size,omitempty" json:"size"`
	Color        string             `bson:"color,omitempty" json:"color"`
	LineTotal    float64            `bson:"lineTotal" json:"line_total"`
}

// TimelineEntry records one status change. The timeline is append-only.
type TimelineEntry struct {
	Status      OrderStatus `bson:"status" json:"status"`
	Date        time.Time   `bson:"date" json:"date"`
	Description string      `bson:"description" json:"description"`
}

// Address is stored as the client sent it; this core does not validate it
// field by field.
type Address struct {
	FullName   string `bson:"fullName,omitempty" json:"full_name"`
	Line1      string `bson:"line1,omitempty" json:"line1"`
	Line2      string `bson:"line2,omitempty" json:"line2"`
	City       string `bson:"city,omitempty" json:"city"`
	State      string `bson:"state,omitempty" json:"state"`
	PostalCode string `bson:"postalCode,omitempty" json:"postal_code"`
	Country    string `bson:"country,omitempty" json:"country"`
	Phone      string `bson:"phone,omitempty" json:"phone"`
}

type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderNumber     string             `bson:"orderNumber" json:"order_number"`
	UserID          string             `bson:"userId" json:"user_id"`
	Items           []OrderItem        `bson:"items" json:"items"`
	Subtotal        float64            `bson:"subtotal" json:"subtotal"`
	Tax             float64            `bson:"tax" json:"tax"`
	ShippingCost    float64            `bson:"shippingCost" json:"shipping_cost"`
	Total           float64            `bson:"total" json:"total"`
	Status          OrderStatus        `bson:"status" json:"status"`
	PaymentStatus   PaymentStatus      `bson:"paymentStatus" json:"payment_status"`
	PaymentMethod   string             `bson:"paymentMethod" json:"payment_method"` // e.g. "card", "cod"
	ShippingAddress Address            `bson:"shippingAddress" json:"shipping_address"`
	Notes           string             `bson:"notes,omitempty" json:"notes"`
	Timeline        []TimelineEntry    `bson:"timeline" json:"timeline"`
	CreatedAt       time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updated_at"`
}
