package controllers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	config "github.com/phillip/pet-adopt-nest-go/config"
)

// testConfig has no Mongo client: the handlers under test must reject
// the request before ever touching the store.
func testConfig() *config.Config {
	return &config.Config{
		AccessTokenKey:  "test-access-token-key",
		StripeSecretKey: "sk_test_dummy",
		DBName:          "pet_adopt_nest_test",
	}
}

// serve registers a single route and plays one JSON request against it.
func serve(t *testing.T, method, pattern string, handler gin.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Handle(method, pattern, handler)

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "user@example.com", normalizeEmail("  User@Example.COM "))
	assert.Equal(t, "a@b.co", normalizeEmail("a@b.co"))
	assert.Equal(t, "", normalizeEmail("   "))
}
