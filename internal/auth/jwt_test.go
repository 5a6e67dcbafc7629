package auth

import (
	"testing"

	"jobmarket_backend/internal/config"
	"jobmarket_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestConfig(secret string) {
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.TTL = 60
	config.AppConfig = cfg
}

func testUser() *models.User {
	return &models.User{
		BaseModel: models.BaseModel{ID: "user-123"},
		Role:      models.UserRoleProvider,
	}
}

func TestTokenRoundtrip(t *testing.T) {
	setTestConfig("roundtrip-secret")

	token, err := GenerateToken(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, models.UserRoleProvider, claims.Role)
}

func TestParseTokenWrongSecret(t *testing.T) {
	setTestConfig("first-secret")
	token, err := GenerateToken(testUser())
	require.NoError(t, err)

	setTestConfig("other-secret")
	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenGarbage(t *testing.T) {
	setTestConfig("any-secret")

	_, err := ParseToken("not.a.token")
	assert.Error(t, err)
}
