package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("DB_USER", "pet_admin")
	t.Setenv("DB_PASS", "secret")
	t.Setenv("ACCESS_TOKEN_KEY", "token-key")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
}

func TestParse_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "pet_adopt_nest", cfg.DBName)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "pet_admin", cfg.DBUser)
}

func TestParse_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("DB_NAME", "pets_staging")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "pets_staging", cfg.DBName)
}

func TestParse_MissingRequired(t *testing.T) {
	t.Setenv("DB_USER", "pet_admin")
	t.Setenv("DB_PASS", "secret")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("ACCESS_TOKEN_KEY", "placeholder") // register cleanup, then unset
	os.Unsetenv("ACCESS_TOKEN_KEY")

	_, err := Parse()
	assert.Error(t, err)
}
