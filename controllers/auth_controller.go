package controllers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	config "github.com/phillip/pet-adopt-nest-go/config"
	middleware "github.com/phillip/pet-adopt-nest-go/middleware"
	models "github.com/phillip/pet-adopt-nest-go/models"
	utils "github.com/phillip/pet-adopt-nest-go/utils"
)

// normalizeEmail lower-cases and trims an email for use as the natural
// key across collections.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ---------------- TOKEN ----------------
func IssueToken(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Email string `json:"email" binding:"required,email"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		token, err := middleware.SignToken(cfg.AccessTokenKey, normalizeEmail(input.Email))
		if err != nil {
			utils.Log.WithError(err).Error("could not sign token")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not sign token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}

// ---------------- SIGNUP ----------------
func CreateLoginUser(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Email string `json:"email" binding:"required,email"`
			Name  string `json:"name"`
			Image string `json:"image"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		email := normalizeEmail(input.Email)

		col := cfg.Collection("users")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err := col.FindOne(ctx, bson.M{"email": email}).Err()
		if err == nil {
			c.JSON(http.StatusOK, gin.H{"message": "user already exist"})
			return
		}
		if err != mongo.ErrNoDocuments {
			utils.Log.WithError(err).Error("could not look up user")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not look up user"})
			return
		}

		now := time.Now()
		user := models.User{
			ID:        primitive.NewObjectID(),
			Email:     email,
			Name:      input.Name,
			Image:     input.Image,
			CreatedAt: now,
			UpdatedAt: now,
		}

		if _, err := col.InsertOne(ctx, user); err != nil {
			utils.Log.WithError(err).Error("could not create user")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create user"})
			return
		}

		c.JSON(http.StatusCreated, user)
	}
}

// ---------------- LIST ----------------
func ListLoginUsers(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		col := cfg.Collection("users")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		cursor, err := col.Find(ctx, bson.M{})
		if err != nil {
			utils.Log.WithError(err).Error("could not fetch users")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch users"})
			return
		}

		var users []models.User
		if err := cursor.All(ctx, &users); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not decode users"})
			return
		}
		if users == nil {
			users = []models.User{}
		}

		c.JSON(http.StatusOK, users)
	}
}

// ---------------- ROLE UPDATES ----------------
func MakeAdmin(cfg *config.Config) gin.HandlerFunc {
	return setUserRole(cfg, models.RoleAdmin)
}

func BanUser(cfg *config.Config) gin.HandlerFunc {
	return setUserRole(cfg, models.RoleBanned)
}

func setUserRole(cfg *config.Config, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		oid, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
			return
		}

		col := cfg.Collection("users")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		res, err := col.UpdateOne(ctx,
			bson.M{"_id": oid},
			bson.M{"$set": bson.M{"role": role, "updated_at": time.Now()}},
		)
		if err != nil {
			utils.Log.WithError(err).Error("could not update user role")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update user role"})
			return
		}
		if res.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "user role updated", "id": oid.Hex(), "role": role})
	}
}
