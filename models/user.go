package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is read/create only; no update or delete surface exists.
// Addresses reference their owner through Address.OwnerUserID rather than
// the user carrying an id array.
type User struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FirstName string             `json:"firstName" bson:"firstName"`
	LastName  string             `json:"lastName" bson:"lastName"`
	Email     string             `json:"email" bson:"email"`
	Password  string             `json:"password,omitempty" bson:"password"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Address is a top-level document owned through OwnerUserID.
type Address struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FirstName    string             `json:"firstName" bson:"firstName"`
	LastName     string             `json:"lastName" bson:"lastName"`
	MobileNumber string             `json:"mobileNumber" bson:"mobileNumber"`
	Line1        string             `json:"addressLine1" bson:"addressLine1"`
	Line2        string             `json:"addressLine2" bson:"addressLine2"`
	Landmark     string             `json:"landmark" bson:"landmark"`
	City         string             `json:"city" bson:"city"`
	Pincode      string             `json:"pincode" bson:"pincode"`
	State        string             `json:"state" bson:"state"`
	Country      string             `json:"country" bson:"country"`
	IsDefault    bool               `json:"isDefaultAddress" bson:"isDefaultAddress"`
	OwnerUserID  string             `json:"userId,omitempty" bson:"userId,omitempty"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}
