package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// List kinds. Each (kind, user) pair maps to exactly one SavedList document.
const (
	ListKindCart     = "cart"
	ListKindWishlist = "wishlist"
)

// ListEntry is one (product, quantity) pairing inside a SavedList.
// ProductID is the product's hex id; entry lookups compare this string.
type ListEntry struct {
	ProductID string    `json:"productId" bson:"productId"`
	Quantity  int       `json:"quantity" bson:"quantity"`
	AddedAt   time.Time `json:"addedAt" bson:"addedAt"`
}

// SavedList is a user's cart or wishlist: one document per (kind, user)
// holding the embedded entries. Quantity is always >= 1; an entry that
// would reach 0 is removed instead.
type SavedList struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Kind      string             `json:"kind" bson:"kind"`
	UserID    string             `json:"userId" bson:"userId"`
	Items     []ListEntry        `json:"items" bson:"items"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}
