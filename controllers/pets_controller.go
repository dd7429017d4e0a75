package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	config "github.com/phillip/pet-adopt-nest-go/config"
	models "github.com/phillip/pet-adopt-nest-go/models"
	utils "github.com/phillip/pet-adopt-nest-go/utils"
)

// ---------------- CREATE ----------------
func CreatePet(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Name             string `json:"name" binding:"required"`
			Category         string `json:"category"`
			Age              string `json:"age"`
			Location         string `json:"location"`
			Image            string `json:"image"`
			ShortDescription string `json:"short_description"`
			LongDescription  string `json:"long_description"`
			OwnerEmail       string `json:"owner_email" binding:"required,email"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// adopted is always false on creation, whatever the caller sent
		now := time.Now()
		pet := models.Pet{
			ID:               primitive.NewObjectID(),
			Name:             input.Name,
			Category:         input.Category,
			Age:              input.Age,
			Location:         input.Location,
			Image:            input.Image,
			ShortDescription: input.ShortDescription,
			LongDescription:  input.LongDescription,
			OwnerEmail:       normalizeEmail(input.OwnerEmail),
			Adopted:          false,
			CreatedAt:        now,
			UpdatedAt:        now,
		}

		col := cfg.Collection("pets")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if _, err := col.InsertOne(ctx, pet); err != nil {
			utils.Log.WithError(err).Error("could not create pet")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create pet"})
			return
		}

		c.JSON(http.StatusCreated, pet)
	}
}

// ---------------- LIST ----------------
func ListPets(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		col := cfg.Collection("pets")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		cursor, err := col.Find(ctx, bson.M{})
		if err != nil {
			utils.Log.WithError(err).Error("could not fetch pets")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch pets"})
			return
		}

		var pets []models.Pet
		if err := cursor.All(ctx, &pets); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not decode pets"})
			return
		}

		if len(pets) == 0 {
			c.JSON(http.StatusOK, []models.Pet{})
			return
		}

		// --- Pick the most recently updated pet ---
		latest := pets[0]
		for _, p := range pets {
			if p.UpdatedAt.After(latest.UpdatedAt) {
				latest = p
			}
		}

		etag := utils.GenerateETag(latest.ID, latest.UpdatedAt)
		if match := c.GetHeader("If-None-Match"); match != "" && match == etag {
			c.Status(http.StatusNotModified)
			return
		}
		c.Header("ETag", etag)
		c.Header("Last-Modified", latest.UpdatedAt.UTC().Format(http.TimeFormat))

		c.JSON(http.StatusOK, pets)
	}
}

// ---------------- GET ----------------
func GetPet(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		oid, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pet id"})
			return
		}

		var pet models.Pet
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err = cfg.Collection("pets").FindOne(ctx, bson.M{"_id": oid}).Decode(&pet)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "pet not found"})
			return
		}

		etag := utils.GenerateETag(pet.ID, pet.UpdatedAt)
		if match := c.GetHeader("If-None-Match"); match != "" && match == etag {
			c.Status(http.StatusNotModified)
			return
		}
		c.Header("ETag", etag)

		c.JSON(http.StatusOK, pet)
	}
}

// ---------------- LIST BY OWNER ----------------
func ListPetsByEmail(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Query("email")
		if email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
			return
		}

		col := cfg.Collection("pets")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		cursor, err := col.Find(ctx, bson.M{"owner_email": normalizeEmail(email)})
		if err != nil {
			utils.Log.WithError(err).Error("could not fetch pets")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch pets"})
			return
		}

		var pets []models.Pet
		if err := cursor.All(ctx, &pets); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not decode pets"})
			return
		}
		if pets == nil {
			pets = []models.Pet{}
		}

		c.JSON(http.StatusOK, pets)
	}
}

// ---------------- UPDATE ----------------
// One canonical update contract for pets: only these fields are
// replaceable, anything else in the body is ignored.
func UpdatePet(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		oid, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pet id"})
			return
		}

		var input struct {
			Name             string `json:"name"`
			Category         string `json:"category"`
			Age              string `json:"age"`
			Location         string `json:"location"`
			Image            string `json:"image"`
			ShortDescription string `json:"short_description"`
			LongDescription  string `json:"long_description"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		update := bson.M{"updated_at": time.Now()}
		if input.Name != "" {
			update["name"] = input.Name
		}
		if input.Category != "" {
			update["category"] = input.Category
		}
		if input.Age != "" {
			update["age"] = input.Age
		}
		if input.Location != "" {
			update["location"] = input.Location
		}
		if input.Image != "" {
			update["image"] = input.Image
		}
		if input.ShortDescription != "" {
			update["short_description"] = input.ShortDescription
		}
		if input.LongDescription != "" {
			update["long_description"] = input.LongDescription
		}

		if len(update) == 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no fields to update"})
			return
		}

		col := cfg.Collection("pets")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		res, err := col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": update})
		if err != nil {
			utils.Log.WithError(err).Error("could not update pet")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update pet"})
			return
		}
		if res.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "pet not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "pet updated", "id": oid.Hex()})
	}
}

// ---------------- STATUS ----------------
func UpdatePetStatus(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		oid, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pet id"})
			return
		}

		var input struct {
			Adopted *bool `json:"adopted" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "adopted is required"})
			return
		}

		col := cfg.Collection("pets")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		res, err := col.UpdateOne(ctx,
			bson.M{"_id": oid},
			bson.M{"$set": bson.M{"adopted": *input.Adopted, "updated_at": time.Now()}},
		)
		if err != nil {
			utils.Log.WithError(err).Error("could not update pet status")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update pet status"})
			return
		}
		if res.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "pet not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "pet status updated", "id": oid.Hex(), "adopted": *input.Adopted})
	}
}

// ---------------- DELETE ----------------
func DeletePet(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		oid, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pet id"})
			return
		}

		col := cfg.Collection("pets")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		var existing models.Pet
		if err := col.FindOne(ctx, bson.M{"_id": oid}).Decode(&existing); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "pet not found"})
			return
		}

		res, err := col.DeleteOne(ctx, bson.M{"_id": oid})
		if err != nil {
			utils.Log.WithError(err).Error("could not delete pet")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete pet"})
			return
		}
		if res.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "pet not found"})
			return
		}

		if existing.Image != "" {
			if err := utils.DeleteImage(existing.Image); err != nil {
				utils.Log.WithError(err).Warn("could not delete pet image")
			}
		}

		c.JSON(http.StatusOK, gin.H{"message": "pet deleted", "id": oid.Hex()})
	}
}

// ---------------- IMAGE UPLOAD ----------------
func UploadPetImage(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		oid, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pet id"})
			return
		}

		fileHeader, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open file"})
			return
		}
		defer file.Close()

		url, err := utils.UploadPetImage(file)
		if err != nil {
			utils.Log.WithError(err).Error("image upload failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "image upload failed"})
			return
		}

		col := cfg.Collection("pets")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		res, err := col.UpdateOne(ctx,
			bson.M{"_id": oid},
			bson.M{"$set": bson.M{"image": url, "updated_at": time.Now()}},
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update pet"})
			return
		}
		if res.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "pet not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "image uploaded", "id": oid.Hex(), "image": url})
	}
}

// ---------------- ADMIN LISTING ----------------
// Joins every pet to the login user owning it.
func ListPetsAndOwners(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		col := cfg.Collection("pets")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		pipeline := mongo.Pipeline{
			bson.D{{Key: "$lookup", Value: bson.M{
				"from":         "users",
				"localField":   "owner_email",
				"foreignField": "email",
				"as":           "owner",
			}}},
			bson.D{{Key: "$addFields", Value: bson.M{
				"owner": bson.M{"$arrayElemAt": bson.A{"$owner", 0}},
			}}},
		}

		cursor, err := col.Aggregate(ctx, pipeline)
		if err != nil {
			utils.Log.WithError(err).Error("could not aggregate pets and owners")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch pets"})
			return
		}

		var results []models.PetWithOwner
		if err := cursor.All(ctx, &results); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not decode pets"})
			return
		}
		if results == nil {
			results = []models.PetWithOwner{}
		}

		c.JSON(http.StatusOK, results)
	}
}
