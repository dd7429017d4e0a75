package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	AdoptionPending  = "pending"
	AdoptionAccepted = "accepted"
	AdoptionRejected = "rejected"
)

type AdoptionRequest struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PetID            primitive.ObjectID `bson:"pet_id" json:"pet_id"`
	PetName          string             `bson:"pet_name,omitempty" json:"pet_name,omitempty"`
	RequesterName    string             `bson:"requester_name" json:"requester_name"`
	RequesterEmail   string             `bson:"requester_email" json:"requester_email"`
	RequesterPhone   string             `bson:"requester_phone,omitempty" json:"requester_phone,omitempty"`
	RequesterAddress string             `bson:"requester_address,omitempty" json:"requester_address,omitempty"`
	OwnerEmail       string             `bson:"owner_email" json:"owner_email"`
	Status           string             `bson:"status" json:"status"` // pending, accepted, rejected
	CreatedAt        time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time          `bson:"updated_at" json:"updated_at"`
}
