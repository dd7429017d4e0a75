package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPet_InvalidID(t *testing.T) {
	w := serve(t, http.MethodGet, "/allPet/:id", GetPet(testConfig()), "/allPet/not-an-id", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid pet id")
}

func TestCreatePet_InvalidBody(t *testing.T) {
	w := serve(t, http.MethodPost, "/allPet", CreatePet(testConfig()), "/allPet", "{not json")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreatePet_MissingOwnerEmail(t *testing.T) {
	w := serve(t, http.MethodPost, "/allPet", CreatePet(testConfig()),
		"/allPet", `{"name":"Rex"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListPetsByEmail_MissingEmail(t *testing.T) {
	w := serve(t, http.MethodGet, "/allDataByEmail", ListPetsByEmail(testConfig()), "/allDataByEmail", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email is required")
}

func TestUpdatePet_InvalidID(t *testing.T) {
	w := serve(t, http.MethodPatch, "/allPet/:id", UpdatePet(testConfig()),
		"/allPet/zzz", `{"name":"Rex"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdatePet_NoFields(t *testing.T) {
	w := serve(t, http.MethodPatch, "/allPet/:id", UpdatePet(testConfig()),
		"/allPet/64b5fc2e8f1b2c3d4e5f6a7b", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "no fields to update")
}

func TestUpdatePetStatus_MissingAdopted(t *testing.T) {
	w := serve(t, http.MethodPatch, "/allPet/:id/status", UpdatePetStatus(testConfig()),
		"/allPet/64b5fc2e8f1b2c3d4e5f6a7b/status", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "adopted is required")
}

func TestDeletePet_InvalidID(t *testing.T) {
	w := serve(t, http.MethodDelete, "/allPet/:id", DeletePet(testConfig()), "/allPet/xyz", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadPetImage_InvalidID(t *testing.T) {
	w := serve(t, http.MethodPost, "/allPet/:id/image", UploadPetImage(testConfig()),
		"/allPet/bad/image", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
