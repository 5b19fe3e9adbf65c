package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category groups products for the storefront. Deleting a category does
// not cascade to the products that reference it.
type Category struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"categoryName" bson:"categoryName"`
	ImageURL  string             `json:"categoryImageUrl" bson:"categoryImageUrl"`
	IsChecked bool               `json:"checked" bson:"checked"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Product is a single catalog item. CategoryID holds the hex id of a
// Category and may be empty.
type Product struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title           string             `json:"productTitle" bson:"productTitle"`
	Description     string             `json:"description" bson:"description"`
	Rating          float64            `json:"rating" bson:"rating"`
	ReviewCount     int                `json:"numberOfReviews" bson:"numberOfReviews"`
	CategoryID      string             `json:"categoryId,omitempty" bson:"categoryId,omitempty"`
	OriginalPrice   float64            `json:"originalPrice" bson:"originalPrice"`
	SellingPrice    float64            `json:"sellingPrice" bson:"sellingPrice"`
	Ingredients     string             `json:"ingredients" bson:"ingredients"`
	NetWeightGrams  float64            `json:"netWeight" bson:"netWeight"`
	ImageURL        string             `json:"imageUrl" bson:"imageUrl"`
	ThumbnailURL    string             `json:"thumbnailUrl,omitempty" bson:"thumbnailUrl,omitempty"`
	DefaultQuantity int                `json:"quantity" bson:"quantity"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt"`
}
