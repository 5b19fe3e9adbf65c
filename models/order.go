package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order is append-only. Product title and unit price are snapshotted at
// creation time so later catalog edits cannot rewrite order history.
type Order struct {
	ID                primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	OrderRef          string             `json:"orderRef" bson:"orderRef"`
	UserID            string             `json:"userId,omitempty" bson:"userId,omitempty"`
	ProductID         string             `json:"productId" bson:"productId"`
	ProductTitle      string             `json:"productTitle" bson:"productTitle"`
	UnitPrice         float64            `json:"unitPrice" bson:"unitPrice"`
	Quantity          int                `json:"quantity" bson:"quantity"`
	OrderDate         time.Time          `json:"orderDate" bson:"orderDate"`
	ShippingAddressID string             `json:"shippingAddress" bson:"shippingAddress"`
	CreatedAt         time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// OrderView is the read shape for GET /api/orders: the order expanded
// with its shipping address document when it still exists.
type OrderView struct {
	Order
	Address *Address `json:"shippingAddressDetails,omitempty" bson:"-"`
}
