package routes

import (
	"github.com/gin-gonic/gin"

	config "github.com/phillip/pet-adopt-nest-go/config"
	controllers "github.com/phillip/pet-adopt-nest-go/controllers"
	middleware "github.com/phillip/pet-adopt-nest-go/middleware"
)

func SetupRoutes(r *gin.Engine, cfg *config.Config) {
	auth := middleware.AuthMiddleware(cfg)
	admin := middleware.RequireAdmin(cfg)

	// auth + users
	r.POST("/jwt", controllers.IssueToken(cfg))
	r.POST("/loginUsers", controllers.CreateLoginUser(cfg))
	r.GET("/loginUsers", auth, admin, controllers.ListLoginUsers(cfg))
	r.PATCH("/makeAdmin/:id", auth, admin, controllers.MakeAdmin(cfg))
	r.PATCH("/banAdmin/:id", auth, admin, controllers.BanUser(cfg))

	// pets
	r.POST("/allPet", auth, controllers.CreatePet(cfg))
	r.GET("/allPet", controllers.ListPets(cfg))
	r.GET("/allPet/:id", controllers.GetPet(cfg))
	r.PATCH("/allPet/:id", auth, controllers.UpdatePet(cfg))
	r.DELETE("/allPet/:id", auth, controllers.DeletePet(cfg))
	r.PATCH("/allPet/:id/status", auth, controllers.UpdatePetStatus(cfg))
	r.POST("/allPet/:id/image", auth, controllers.UploadPetImage(cfg))
	r.GET("/allDataByEmail", controllers.ListPetsByEmail(cfg))
	r.GET("/allPetsAndOwnersForAdmin", auth, admin, controllers.ListPetsAndOwners(cfg))
	r.PATCH("/updatePetByAdmin/:id", auth, admin, controllers.UpdatePet(cfg))
	r.DELETE("/deletePetByAdmin/:id", auth, admin, controllers.DeletePet(cfg))
	r.PATCH("/petStatusUpdateByAdmin/:id", auth, admin, controllers.UpdatePetStatus(cfg))

	// adoption requests
	r.POST("/adoptPets", auth, controllers.CreateAdoptionRequest(cfg))
	r.PATCH("/adoptPets/:id/status", auth, controllers.AcceptAdoption(cfg))
	r.PATCH("/adoptPets/:id/reject", auth, controllers.RejectAdoption(cfg))
	r.GET("/requestedForAdoptByOwnerEmail", auth, controllers.ListRequestsByOwnerEmail(cfg))
	r.GET("/availablePets", controllers.ListAvailablePets(cfg))

	// donation campaigns
	r.POST("/createDonationCampaign", auth, controllers.CreateCampaign(cfg))
	r.GET("/cdcData", controllers.ListCampaigns(cfg))
	r.GET("/cdcData/:id", controllers.GetCampaign(cfg))
	r.PATCH("/cdcData/:id", auth, controllers.UpdateCampaign(cfg))
	r.DELETE("/cdcData/:id", auth, controllers.DeleteCampaign(cfg))
	r.PATCH("/cdcData/:id/status", auth, controllers.UpdateCampaignStatus(cfg))
	r.PATCH("/updateCdcDataByAdmin/:id", auth, admin, controllers.UpdateCampaign(cfg))
	r.DELETE("/deleteCdcDataByAdmin/:id", auth, admin, controllers.DeleteCampaign(cfg))
	r.PATCH("/cdcStatusUpdateByAdmin/:id", auth, admin, controllers.UpdateCampaignStatus(cfg))
	r.GET("/cdcDataByEmail", controllers.CampaignProgressByEmail(cfg))
	r.GET("/recommended_donation", controllers.RecommendedCampaigns(cfg))
	r.GET("/recommended_donation/:id", controllers.RecommendedCampaigns(cfg))

	// donation payments
	r.POST("/create_payment_intent", auth, controllers.CreatePaymentIntent(cfg))
	r.POST("/donationPayment", auth, controllers.RecordDonation(cfg))
	r.GET("/donationPayment", auth, controllers.ListDonations(cfg))
	r.GET("/donationPayment/:id", auth, controllers.GetDonation(cfg))
	r.DELETE("/donationPayment/:id", auth, controllers.DeleteDonation(cfg))
	r.DELETE("/refund/:id", auth, controllers.RefundDonation(cfg))
	r.GET("/donarDataByEmail", auth, controllers.DonorHistoryByEmail(cfg))
}
