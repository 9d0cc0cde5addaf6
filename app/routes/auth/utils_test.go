package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mark-john-ignacio/school-cashier-system/app/config"
)

func init() {
	config.AppConfig = &config.Config{JWTSecret: []byte("test-secret")}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct-horse-battery")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("correct-horse-battery", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("user-1", "cashier@school.test", "Maria", "Reyes", []string{"cashier"})
	require.NoError(t, err)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "cashier@school.test", claims.Email)
	assert.Equal(t, "Maria", claims.FirstName)
	assert.Equal(t, []string{"cashier"}, claims.Roles)
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	_, err := ValidateJWT("not.a.token")
	assert.Error(t, err)
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	token, err := GenerateJWT("user-1", "cashier@school.test", "Maria", "Reyes", nil)
	require.NoError(t, err)

	config.AppConfig.JWTSecret = []byte("different-secret")
	defer func() { config.AppConfig.JWTSecret = []byte("test-secret") }()

	_, err = ValidateJWT(token)
	assert.Error(t, err)
}
