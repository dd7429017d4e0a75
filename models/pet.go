package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Pet struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name             string             `bson:"name" json:"name"`
	Category         string             `bson:"category,omitempty" json:"category,omitempty"`
	Age              string             `bson:"age,omitempty" json:"age,omitempty"`
	Location         string             `bson:"location,omitempty" json:"location,omitempty"`
	Image            string             `bson:"image,omitempty" json:"image,omitempty"`
	ShortDescription string             `bson:"short_description,omitempty" json:"short_description,omitempty"`
	LongDescription  string             `bson:"long_description,omitempty" json:"long_description,omitempty"`
	OwnerEmail       string             `bson:"owner_email" json:"owner_email"`
	Adopted          bool               `bson:"adopted" json:"adopted"`
	CreatedAt        time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time          `bson:"updated_at" json:"updated_at"`
}

// PetWithOwner is the admin listing shape: a pet joined to the login
// user owning it. Owner is nil when no matching user exists.
type PetWithOwner struct {
	Pet   `bson:",inline"`
	Owner *User `bson:"owner" json:"owner"`
}
