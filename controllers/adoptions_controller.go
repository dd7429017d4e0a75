package controllers

import (
	"context"
	"errors"
	"fmt"
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

var errAlreadyDecided = errors.New("adoption request already decided")

// ---------------- CREATE ----------------
func CreateAdoptionRequest(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			PetID            string `json:"pet_id" binding:"required"`
			RequesterName    string `json:"requester_name" binding:"required"`
			RequesterEmail   string `json:"requester_email" binding:"required,email"`
			RequesterPhone   string `json:"requester_phone"`
			RequesterAddress string `json:"requester_address"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		petID, err := primitive.ObjectIDFromHex(input.PetID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pet id"})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		// the referenced pet must exist; its owner email is denormalized
		// onto the request
		var pet models.Pet
		if err := cfg.Collection("pets").FindOne(ctx, bson.M{"_id": petID}).Decode(&pet); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "pet not found"})
			return
		}

		// status is always pending on creation
		now := time.Now()
		request := models.AdoptionRequest{
			ID:               primitive.NewObjectID(),
			PetID:            petID,
			PetName:          pet.Name,
			RequesterName:    input.RequesterName,
			RequesterEmail:   normalizeEmail(input.RequesterEmail),
			RequesterPhone:   input.RequesterPhone,
			RequesterAddress: input.RequesterAddress,
			OwnerEmail:       pet.OwnerEmail,
			Status:           models.AdoptionPending,
			CreatedAt:        now,
			UpdatedAt:        now,
		}

		if _, err := cfg.Collection("adoptions").InsertOne(ctx, request); err != nil {
			utils.Log.WithError(err).Error("could not create adoption request")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create adoption request"})
			return
		}

		c.JSON(http.StatusCreated, request)
	}
}

// ---------------- ACCEPT / REJECT ----------------
func AcceptAdoption(cfg *config.Config) gin.HandlerFunc {
	return decideAdoption(cfg, models.AdoptionAccepted, true)
}

func RejectAdoption(cfg *config.Config) gin.HandlerFunc {
	return decideAdoption(cfg, models.AdoptionRejected, false)
}

// decideAdoption finalizes a pending request and cascades to the pet's
// adopted flag. Both writes run in one transaction so a crash cannot
// leave a decided request pointing at a stale pet.
func decideAdoption(cfg *config.Config, status string, adopted bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		oid, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid adoption request id"})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		session, err := cfg.MongoClient.StartSession()
		if err != nil {
			utils.Log.WithError(err).Error("could not start session")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update adoption request"})
			return
		}
		defer session.EndSession(ctx)

		result, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
			adoptions := cfg.Collection("adoptions")

			var request models.AdoptionRequest
			if err := adoptions.FindOne(sc, bson.M{"_id": oid}).Decode(&request); err != nil {
				return nil, err
			}
			if request.Status != models.AdoptionPending {
				return nil, errAlreadyDecided
			}

			now := time.Now()
			if _, err := adoptions.UpdateOne(sc,
				bson.M{"_id": oid},
				bson.M{"$set": bson.M{"status": status, "updated_at": now}},
			); err != nil {
				return nil, err
			}

			if _, err := cfg.Collection("pets").UpdateOne(sc,
				bson.M{"_id": request.PetID},
				bson.M{"$set": bson.M{"adopted": adopted, "updated_at": now}},
			); err != nil {
				return nil, err
			}

			return request, nil
		})
		if err != nil {
			switch {
			case errors.Is(err, mongo.ErrNoDocuments):
				c.JSON(http.StatusNotFound, gin.H{"error": "adoption request not found"})
			case errors.Is(err, errAlreadyDecided):
				c.JSON(http.StatusBadRequest, gin.H{"error": errAlreadyDecided.Error()})
			default:
				utils.Log.WithError(err).Error("could not update adoption request")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update adoption request"})
			}
			return
		}

		request := result.(models.AdoptionRequest)
		notifyRequester(request, status)

		c.JSON(http.StatusOK, gin.H{"message": "adoption request " + status, "id": oid.Hex(), "status": status})
	}
}

// notifyRequester emails the requester about the decision. Failures are
// logged and never fail the request.
func notifyRequester(request models.AdoptionRequest, status string) {
	subject := fmt.Sprintf("Your adoption request for %s was %s", request.PetName, status)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your request to adopt <b>%s</b> has been <b>%s</b> by the owner.</p>",
		request.RequesterName, request.PetName, status,
	)
	if err := utils.SendEmail(request.RequesterEmail, request.RequesterName, subject, body); err != nil {
		utils.Log.WithError(err).Warn("could not send adoption notification")
	}
}

// ---------------- LIST BY OWNER ----------------
func ListRequestsByOwnerEmail(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Query("email")
		if email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
			return
		}

		col := cfg.Collection("adoptions")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		cursor, err := col.Find(ctx, bson.M{"owner_email": normalizeEmail(email)})
		if err != nil {
			utils.Log.WithError(err).Error("could not fetch adoption requests")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch adoption requests"})
			return
		}

		var requests []models.AdoptionRequest
		if err := cursor.All(ctx, &requests); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not decode adoption requests"})
			return
		}
		if requests == nil {
			requests = []models.AdoptionRequest{}
		}

		c.JSON(http.StatusOK, requests)
	}
}

// ---------------- AVAILABLE PETS ----------------
// Available means no adoption request has ever been filed for the pet,
// which is deliberately distinct from the adopted flag.
func ListAvailablePets(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		raw, err := cfg.Collection("adoptions").Distinct(ctx, "pet_id", bson.M{})
		if err != nil {
			utils.Log.WithError(err).Error("could not fetch requested pet ids")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch pets"})
			return
		}

		// build the exclusion set, skipping anything that is not a real id
		requested := make([]primitive.ObjectID, 0, len(raw))
		for _, v := range raw {
			if oid, ok := v.(primitive.ObjectID); ok && !oid.IsZero() {
				requested = append(requested, oid)
			}
		}

		cursor, err := cfg.Collection("pets").Find(ctx, bson.M{"_id": bson.M{"$nin": requested}})
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
