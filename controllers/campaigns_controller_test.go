package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateCampaign_MissingTarget(t *testing.T) {
	body := `{"name":"Vet bills","owner_email":"owner@example.com"}`
	w := serve(t, http.MethodPost, "/createDonationCampaign", CreateCampaign(testConfig()),
		"/createDonationCampaign", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCampaign_InvalidID(t *testing.T) {
	w := serve(t, http.MethodGet, "/cdcData/:id", GetCampaign(testConfig()), "/cdcData/nope", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid campaign id")
}

func TestUpdateCampaign_NoFields(t *testing.T) {
	w := serve(t, http.MethodPatch, "/cdcData/:id", UpdateCampaign(testConfig()),
		"/cdcData/64b5fc2e8f1b2c3d4e5f6a7b", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "no fields to update")
}

func TestUpdateCampaignStatus_MissingStatus(t *testing.T) {
	w := serve(t, http.MethodPatch, "/cdcData/:id/status", UpdateCampaignStatus(testConfig()),
		"/cdcData/64b5fc2e8f1b2c3d4e5f6a7b/status", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "status is required")
}

func TestCampaignProgressByEmail_MissingEmail(t *testing.T) {
	w := serve(t, http.MethodGet, "/cdcDataByEmail", CampaignProgressByEmail(testConfig()),
		"/cdcDataByEmail", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email is required")
}

func TestRecommendedCampaigns_InvalidExclusionID(t *testing.T) {
	w := serve(t, http.MethodGet, "/recommended_donation/:id", RecommendedCampaigns(testConfig()),
		"/recommended_donation/bogus", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
