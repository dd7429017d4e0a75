package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateAdoptionRequest_MalformedPetID(t *testing.T) {
	body := `{"pet_id":"not-an-id","requester_name":"Jo","requester_email":"jo@example.com"}`
	w := serve(t, http.MethodPost, "/adoptPets", CreateAdoptionRequest(testConfig()), "/adoptPets", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid pet id")
}

func TestCreateAdoptionRequest_MissingRequester(t *testing.T) {
	body := `{"pet_id":"64b5fc2e8f1b2c3d4e5f6a7b"}`
	w := serve(t, http.MethodPost, "/adoptPets", CreateAdoptionRequest(testConfig()), "/adoptPets", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAcceptAdoption_InvalidID(t *testing.T) {
	w := serve(t, http.MethodPatch, "/adoptPets/:id/status", AcceptAdoption(testConfig()),
		"/adoptPets/oops/status", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid adoption request id")
}

func TestRejectAdoption_InvalidID(t *testing.T) {
	w := serve(t, http.MethodPatch, "/adoptPets/:id/reject", RejectAdoption(testConfig()),
		"/adoptPets/oops/reject", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListRequestsByOwnerEmail_MissingEmail(t *testing.T) {
	w := serve(t, http.MethodGet, "/requestedForAdoptByOwnerEmail",
		ListRequestsByOwnerEmail(testConfig()), "/requestedForAdoptByOwnerEmail", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email is required")
}
