package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naqla-app/naqla/internal/pkg/models"
)

func jwtTestConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "naqla-test",
		},
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := jwtTestConfig()
	userID := uuid.New()

	token, expiresAt, err := GenerateToken(userID, "driver@example.com", models.RoleDriver, cfg)

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	claims, err := ValidateToken(token, cfg.JWT.Secret)

	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims["user_id"])
	assert.Equal(t, "driver@example.com", claims["email"])
	assert.Equal(t, models.RoleDriver, claims["role"])
	assert.Equal(t, "naqla-test", claims["iss"])
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := jwtTestConfig()

	token, _, err := GenerateToken(uuid.New(), "driver@example.com", models.RoleDriver, cfg)
	require.NoError(t, err)

	claims, err := ValidateToken(token, "other-secret")

	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateToken_Garbage(t *testing.T) {
	claims, err := ValidateToken("not-a-token", "test-secret")

	assert.Error(t, err)
	assert.Nil(t, claims)
}
