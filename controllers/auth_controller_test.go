package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueToken_MissingEmail(t *testing.T) {
	w := serve(t, http.MethodPost, "/jwt", IssueToken(testConfig()), "/jwt", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIssueToken_InvalidEmail(t *testing.T) {
	w := serve(t, http.MethodPost, "/jwt", IssueToken(testConfig()), "/jwt", `{"email":"not-an-email"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIssueToken_SignsNormalizedEmailClaim(t *testing.T) {
	cfg := testConfig()
	w := serve(t, http.MethodPost, "/jwt", IssueToken(cfg), "/jwt", `{"email":" User@Example.com "}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	parsed, err := jwt.Parse(resp.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte(cfg.AccessTokenKey), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, "user@example.com", claims["email"])
}

func TestCreateLoginUser_MissingEmail(t *testing.T) {
	w := serve(t, http.MethodPost, "/loginUsers", CreateLoginUser(testConfig()), "/loginUsers", `{"name":"Jo"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMakeAdmin_InvalidID(t *testing.T) {
	w := serve(t, http.MethodPatch, "/makeAdmin/:id", MakeAdmin(testConfig()), "/makeAdmin/xyz", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid user id")
}

func TestBanUser_InvalidID(t *testing.T) {
	w := serve(t, http.MethodPatch, "/banAdmin/:id", BanUser(testConfig()), "/banAdmin/xyz", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
