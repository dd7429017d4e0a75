package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const DonationSuccess = "success"

type DonationPayment struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CampaignID primitive.ObjectID `bson:"campaign_id" json:"campaign_id"`
	DonorName  string             `bson:"donor_name,omitempty" json:"donor_name,omitempty"`
	DonorEmail string             `bson:"donor_email" json:"donor_email"`
	Amount     float64            `bson:"amount" json:"amount"`
	Status     string             `bson:"status" json:"status"` // success, pending, failed
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}

// DonorDonation is the donor-history shape: a payment projected with
// the name and image of the campaign it went to. The campaign fields
// stay empty when the campaign has since been deleted.
type DonorDonation struct {
	ID            primitive.ObjectID `bson:"_id" json:"id"`
	CampaignID    primitive.ObjectID `bson:"campaign_id" json:"campaign_id"`
	CampaignName  string             `bson:"campaign_name,omitempty" json:"campaign_name,omitempty"`
	CampaignImage string             `bson:"campaign_image,omitempty" json:"campaign_image,omitempty"`
	Amount        float64            `bson:"amount" json:"amount"`
	Status        string             `bson:"status" json:"status"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
}
