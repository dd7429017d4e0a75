package controllers

import (
	"context"
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	config "github.com/phillip/pet-adopt-nest-go/config"
	models "github.com/phillip/pet-adopt-nest-go/models"
	utils "github.com/phillip/pet-adopt-nest-go/utils"
)

const donationCurrency = string(stripe.CurrencyUSD)

// minorUnits converts a donation amount to the processor's minor units.
func minorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// ---------------- PAYMENT INTENT ----------------
func CreatePaymentIntent(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			DonationAmount float64 `json:"donationAmount"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if input.DonationAmount <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "donationAmount must be greater than 0"})
			return
		}

		stripe.Key = cfg.StripeSecretKey

		params := &stripe.PaymentIntentParams{
			Amount:             stripe.Int64(minorUnits(input.DonationAmount)),
			Currency:           stripe.String(donationCurrency),
			PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		}

		intent, err := paymentintent.New(params)
		if err != nil {
			utils.Log.WithError(err).Error("could not create payment intent")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create payment intent"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"clientSecret": intent.ClientSecret})
	}
}

// ---------------- RECORD ----------------
// A successful payment also bumps the campaign's running total; insert
// and increment share one transaction.
func RecordDonation(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			CampaignID string  `json:"campaign_id" binding:"required"`
			DonorName  string  `json:"donor_name"`
			DonorEmail string  `json:"donor_email" binding:"required,email"`
			Amount     float64 `json:"amount" binding:"required,gt=0"`
			Status     string  `json:"status"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		campaignID, err := primitive.ObjectIDFromHex(input.CampaignID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid campaign id"})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		session, err := cfg.MongoClient.StartSession()
		if err != nil {
			utils.Log.WithError(err).Error("could not start session")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not record donation"})
			return
		}
		defer session.EndSession(ctx)

		payment := models.DonationPayment{
			ID:         primitive.NewObjectID(),
			CampaignID: campaignID,
			DonorName:  input.DonorName,
			DonorEmail: normalizeEmail(input.DonorEmail),
			Amount:     input.Amount,
			Status:     input.Status,
			CreatedAt:  time.Now(),
		}

		_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
			if err := cfg.Collection("campaigns").FindOne(sc, bson.M{"_id": campaignID}).Err(); err != nil {
				return nil, err
			}

			if _, err := cfg.Collection("donations").InsertOne(sc, payment); err != nil {
				return nil, err
			}

			if payment.Status == models.DonationSuccess {
				if _, err := cfg.Collection("campaigns").UpdateOne(sc,
					bson.M{"_id": campaignID},
					bson.M{
						"$inc": bson.M{"donated_amount": payment.Amount},
						"$set": bson.M{"updated_at": time.Now()},
					},
				); err != nil {
					return nil, err
				}
			}

			return nil, nil
		})
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "campaign not found"})
				return
			}
			utils.Log.WithError(err).Error("could not record donation")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not record donation"})
			return
		}

		c.JSON(http.StatusCreated, payment)
	}
}

// ---------------- LIST / GET ----------------
func ListDonations(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		col := cfg.Collection("donations")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		cursor, err := col.Find(ctx, bson.M{})
		if err != nil {
			utils.Log.WithError(err).Error("could not fetch donations")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch donations"})
			return
		}

		var donations []models.DonationPayment
		if err := cursor.All(ctx, &donations); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not decode donations"})
			return
		}
		if donations == nil {
			donations = []models.DonationPayment{}
		}

		c.JSON(http.StatusOK, donations)
	}
}

func GetDonation(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		oid, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid donation id"})
			return
		}

		var payment models.DonationPayment
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err = cfg.Collection("donations").FindOne(ctx, bson.M{"_id": oid}).Decode(&payment)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "donation not found"})
			return
		}

		c.JSON(http.StatusOK, payment)
	}
}

// ---------------- DELETE ----------------
// Bookkeeping removal of a payment record; does not touch the campaign
// total. Use Refund to reverse a successful donation.
func DeleteDonation(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		oid, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid donation id"})
			return
		}

		col := cfg.Collection("donations")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		res, err := col.DeleteOne(ctx, bson.M{"_id": oid})
		if err != nil {
			utils.Log.WithError(err).Error("could not delete donation")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete donation"})
			return
		}
		if res.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "donation not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "donation deleted", "id": oid.Hex()})
	}
}

// ---------------- REFUND ----------------
// Removes the payment and, when it had counted toward the campaign
// total, decrements the total by the same amount in one transaction.
func RefundDonation(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		oid, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid donation id"})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		session, err := cfg.MongoClient.StartSession()
		if err != nil {
			utils.Log.WithError(err).Error("could not start session")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not refund donation"})
			return
		}
		defer session.EndSession(ctx)

		_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
			var payment models.DonationPayment
			if err := cfg.Collection("donations").FindOne(sc, bson.M{"_id": oid}).Decode(&payment); err != nil {
				return nil, err
			}

			if _, err := cfg.Collection("donations").DeleteOne(sc, bson.M{"_id": oid}); err != nil {
				return nil, err
			}

			if payment.Status == models.DonationSuccess {
				if _, err := cfg.Collection("campaigns").UpdateOne(sc,
					bson.M{"_id": payment.CampaignID},
					bson.M{
						"$inc": bson.M{"donated_amount": -payment.Amount},
						"$set": bson.M{"updated_at": time.Now()},
					},
				); err != nil {
					return nil, err
				}
			}

			return nil, nil
		})
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				c.JSON(http.StatusNotFound, gin.H{"error": "donation not found"})
				return
			}
			utils.Log.WithError(err).Error("could not refund donation")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not refund donation"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "donation refunded", "id": oid.Hex()})
	}
}

// ---------------- DONOR HISTORY ----------------
// Each payment joined to its campaign's name and image. A deleted
// campaign leaves those fields empty rather than failing the request.
func DonorHistoryByEmail(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Query("email")
		if email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
			return
		}

		col := cfg.Collection("donations")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		pipeline := mongo.Pipeline{
			bson.D{{Key: "$match", Value: bson.M{"donor_email": normalizeEmail(email)}}},
			bson.D{{Key: "$lookup", Value: bson.M{
				"from":         "campaigns",
				"localField":   "campaign_id",
				"foreignField": "_id",
				"as":           "campaign",
			}}},
			bson.D{{Key: "$addFields", Value: bson.M{
				"campaign": bson.M{"$arrayElemAt": bson.A{"$campaign", 0}},
			}}},
			bson.D{{Key: "$project", Value: bson.M{
				"campaign_id":    1,
				"campaign_name":  "$campaign.name",
				"campaign_image": "$campaign.image",
				"amount":         1,
				"status":         1,
				"created_at":     1,
			}}},
		}

		cursor, err := col.Aggregate(ctx, pipeline)
		if err != nil {
			utils.Log.WithError(err).Error("could not aggregate donor history")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch donor history"})
			return
		}

		var results []models.DonorDonation
		if err := cursor.All(ctx, &results); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not decode donor history"})
			return
		}
		if results == nil {
			results = []models.DonorDonation{}
		}

		c.JSON(http.StatusOK, results)
	}
}
