package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	config "github.com/phillip/pet-adopt-nest-go/config"
	models "github.com/phillip/pet-adopt-nest-go/models"
	utils "github.com/phillip/pet-adopt-nest-go/utils"
)

// ---------------- CREATE ----------------
func CreateCampaign(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Name             string     `json:"name" binding:"required"`
			Image            string     `json:"image"`
			MaxDonation      float64    `json:"max_donation" binding:"required,gt=0"`
			LastDate         *time.Time `json:"last_date"`
			ShortDescription string     `json:"short_description"`
			LongDescription  string     `json:"long_description"`
			OwnerEmail       string     `json:"owner_email" binding:"required,email"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// status is always Active on creation, total starts at zero
		now := time.Now()
		campaign := models.DonationCampaign{
			ID:               primitive.NewObjectID(),
			Name:             input.Name,
			Image:            input.Image,
			MaxDonation:      input.MaxDonation,
			LastDate:         input.LastDate,
			ShortDescription: input.ShortDescription,
			LongDescription:  input.LongDescription,
			OwnerEmail:       normalizeEmail(input.OwnerEmail),
			Status:           models.CampaignActive,
			DonatedAmount:    0,
			CreatedAt:        now,
			UpdatedAt:        now,
		}

		col := cfg.Collection("campaigns")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if _, err := col.InsertOne(ctx, campaign); err != nil {
			utils.Log.WithError(err).Error("could not create campaign")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create campaign"})
			return
		}

		c.JSON(http.StatusCreated, campaign)
	}
}

// ---------------- LIST ----------------
func ListCampaigns(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		col := cfg.Collection("campaigns")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		cursor, err := col.Find(ctx, bson.M{})
		if err != nil {
			utils.Log.WithError(err).Error("could not fetch campaigns")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch campaigns"})
			return
		}

		var campaigns []models.DonationCampaign
		if err := cursor.All(ctx, &campaigns); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not decode campaigns"})
			return
		}
		if campaigns == nil {
			campaigns = []models.DonationCampaign{}
		}

		c.JSON(http.StatusOK, campaigns)
	}
}

// ---------------- GET ----------------
func GetCampaign(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		oid, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid campaign id"})
			return
		}

		var campaign models.DonationCampaign
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err = cfg.Collection("campaigns").FindOne(ctx, bson.M{"_id": oid}).Decode(&campaign)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "campaign not found"})
			return
		}

		c.JSON(http.StatusOK, campaign)
	}
}

// ---------------- UPDATE ----------------
// Fixed allow-list: picture, target, deadline, descriptions, name,
// owner email. Status and the running total are never touched here.
func UpdateCampaign(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		oid, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid campaign id"})
			return
		}

		var input struct {
			Name             string     `json:"name"`
			Image            string     `json:"image"`
			MaxDonation      float64    `json:"max_donation"`
			LastDate         *time.Time `json:"last_date"`
			ShortDescription string     `json:"short_description"`
			LongDescription  string     `json:"long_description"`
			OwnerEmail       string     `json:"owner_email"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		update := bson.M{"updated_at": time.Now()}
		if input.Name != "" {
			update["name"] = input.Name
		}
		if input.Image != "" {
			update["image"] = input.Image
		}
		if input.MaxDonation > 0 {
			update["max_donation"] = input.MaxDonation
		}
		if input.LastDate != nil {
			update["last_date"] = input.LastDate
		}
		if input.ShortDescription != "" {
			update["short_description"] = input.ShortDescription
		}
		if input.LongDescription != "" {
			update["long_description"] = input.LongDescription
		}
		if input.OwnerEmail != "" {
			update["owner_email"] = normalizeEmail(input.OwnerEmail)
		}

		if len(update) == 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no fields to update"})
			return
		}

		col := cfg.Collection("campaigns")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		res, err := col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": update})
		if err != nil {
			utils.Log.WithError(err).Error("could not update campaign")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update campaign"})
			return
		}
		if res.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "campaign not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "campaign updated", "id": oid.Hex()})
	}
}

// ---------------- STATUS ----------------
// Any status string is accepted for any campaign; there is no
// transition validation on campaigns.
func UpdateCampaignStatus(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		oid, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid campaign id"})
			return
		}

		var input struct {
			Status string `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
			return
		}

		col := cfg.Collection("campaigns")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		res, err := col.UpdateOne(ctx,
			bson.M{"_id": oid},
			bson.M{"$set": bson.M{"status": input.Status, "updated_at": time.Now()}},
		)
		if err != nil {
			utils.Log.WithError(err).Error("could not update campaign status")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update campaign status"})
			return
		}
		if res.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "campaign not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "campaign status updated", "id": oid.Hex(), "status": input.Status})
	}
}

// ---------------- DELETE ----------------
func DeleteCampaign(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		oid, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid campaign id"})
			return
		}

		col := cfg.Collection("campaigns")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		res, err := col.DeleteOne(ctx, bson.M{"_id": oid})
		if err != nil {
			utils.Log.WithError(err).Error("could not delete campaign")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete campaign"})
			return
		}
		if res.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "campaign not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "campaign deleted", "id": oid.Hex()})
	}
}

// ---------------- PROGRESS BY OWNER ----------------
// Per owned campaign: join its successful payments, sum them, and
// express the sum as a percentage of the target. A campaign with no
// payments reports zero, not an error.
func CampaignProgressByEmail(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Query("email")
		if email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
			return
		}

		col := cfg.Collection("campaigns")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		pipeline := mongo.Pipeline{
			bson.D{{Key: "$match", Value: bson.M{"owner_email": normalizeEmail(email)}}},
			bson.D{{Key: "$lookup", Value: bson.M{
				"from": "donations",
				"let":  bson.M{"cid": "$_id"},
				"pipeline": bson.A{
					bson.M{"$match": bson.M{"$expr": bson.M{"$and": bson.A{
						bson.M{"$eq": bson.A{"$campaign_id", "$$cid"}},
						bson.M{"$eq": bson.A{"$status", models.DonationSuccess}},
					}}}},
				},
				"as": "payments",
			}}},
			bson.D{{Key: "$addFields", Value: bson.M{
				"total_donated": bson.M{"$ifNull": bson.A{bson.M{"$sum": "$payments.amount"}, 0}},
			}}},
			bson.D{{Key: "$addFields", Value: bson.M{
				"percentage": bson.M{"$multiply": bson.A{
					100,
					bson.M{"$divide": bson.A{
						"$total_donated",
						bson.M{"$cond": bson.A{
							bson.M{"$gt": bson.A{"$max_donation", 0}},
							"$max_donation",
							1,
						}},
					}},
				}},
			}}},
			bson.D{{Key: "$project", Value: bson.M{"payments": 0}}},
		}

		cursor, err := col.Aggregate(ctx, pipeline)
		if err != nil {
			utils.Log.WithError(err).Error("could not aggregate campaign progress")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch campaign progress"})
			return
		}

		var results []models.CampaignProgress
		if err := cursor.All(ctx, &results); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not decode campaign progress"})
			return
		}
		if results == nil {
			results = []models.CampaignProgress{}
		}

		c.JSON(http.StatusOK, results)
	}
}

// ---------------- RECOMMENDED ----------------
// Up to three active campaigns, newest first, optionally excluding the
// campaign currently being viewed.
func RecommendedCampaigns(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := bson.M{"status": models.CampaignActive}
		if id := c.Param("id"); id != "" {
			oid, err := primitive.ObjectIDFromHex(id)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid campaign id"})
				return
			}
			filter["_id"] = bson.M{"$ne": oid}
		}

		col := cfg.Collection("campaigns")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		opts := options.Find().
			SetSort(bson.D{{Key: "created_at", Value: -1}}).
			SetLimit(3)

		cursor, err := col.Find(ctx, filter, opts)
		if err != nil {
			utils.Log.WithError(err).Error("could not fetch recommended campaigns")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch campaigns"})
			return
		}

		var campaigns []models.DonationCampaign
		if err := cursor.All(ctx, &campaigns); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not decode campaigns"})
			return
		}
		if campaigns == nil {
			campaigns = []models.DonationCampaign{}
		}

		c.JSON(http.StatusOK, campaigns)
	}
}
