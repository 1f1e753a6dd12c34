package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJWTService_SessionTokenRoundTrip(t *testing.T) {
	service := NewJWTService("test-secret")

	token, err := service.GenerateSessionToken(7, "Demo-lition", "demo@user.io")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "Demo-lition", claims.Username)
	assert.Equal(t, "demo@user.io", claims.Email)
	assert.NotEmpty(t, claims.ID)
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	token, err := NewJWTService("test-secret").GenerateSessionToken(7, "Demo-lition", "demo@user.io")
	assert.NoError(t, err)

	claims, err := NewJWTService("other-secret").ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ValidateToken_Malformed(t *testing.T) {
	claims, err := NewJWTService("test-secret").ValidateToken("not.a.token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}
