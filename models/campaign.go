package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const CampaignActive = "Active"

type DonationCampaign struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name             string             `bson:"name" json:"name"`
	Image            string             `bson:"image,omitempty" json:"image,omitempty"`
	MaxDonation      float64            `bson:"max_donation" json:"max_donation"`
	LastDate         *time.Time         `bson:"last_date,omitempty" json:"last_date,omitempty"`
	ShortDescription string             `bson:"short_description,omitempty" json:"short_description,omitempty"`
	LongDescription  string             `bson:"long_description,omitempty" json:"long_description,omitempty"`
	OwnerEmail       string             `bson:"owner_email" json:"owner_email"`
	Status           string             `bson:"status" json:"status"` // Active, Paused, Closed
	DonatedAmount    float64            `bson:"donated_amount" json:"donated_amount"`
	CreatedAt        time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time          `bson:"updated_at" json:"updated_at"`
}

// CampaignProgress is the reporting shape: a campaign plus the sum of
// its successful payments and how far along the target that puts it.
type CampaignProgress struct {
	DonationCampaign `bson:",inline"`
	TotalDonated     float64 `bson:"total_donated" json:"total_donated"`
	Percentage       float64 `bson:"percentage" json:"percentage"`
}
