package services

import (
	"testing"

	"carelog-http-service/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTGenerateAndExtract(t *testing.T) {
	svc := NewJWTService(newTestConfig())

	token, err := svc.GenerateToken(42, "佐藤", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "佐藤", claims.Name)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "carelog-http-service", claims.Issuer)
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	svc := NewJWTService(newTestConfig())
	other := NewJWTService(&config.Config{JWTSecretKey: "different-secret"})

	token, err := svc.GenerateToken(1, "佐藤", "caregiver")
	require.NoError(t, err)

	_, err = other.ExtractClaims(token)
	assert.Error(t, err)
}

func TestJWTRejectsGarbage(t *testing.T) {
	svc := NewJWTService(newTestConfig())

	_, err := svc.ExtractClaims("not-a-token")
	assert.Error(t, err)
}
