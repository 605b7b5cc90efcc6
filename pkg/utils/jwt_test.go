package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	userID := uuid.New()

	token, err := manager.GenerateAccessToken(userID, "cashier@shop.test", "SALES_EXECUTIVE")
	require.NoError(t, err)

	claims, err := manager.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "cashier@shop.test", claims.Email)
	assert.Equal(t, "SALES_EXECUTIVE", claims.Role)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	userID := uuid.New()
	token, err := NewJWTManager("secret-a", time.Hour, time.Hour).
		GenerateAccessToken(userID, "x@shop.test", "AUDITOR")
	require.NoError(t, err)

	_, err = NewJWTManager("secret-b", time.Hour, time.Hour).ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	manager := NewJWTManager("test-secret", -time.Minute, time.Hour)
	token, err := manager.GenerateAccessToken(uuid.New(), "x@shop.test", "AUDITOR")
	require.NoError(t, err)

	_, err = manager.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestRefreshTokenCarriesSubject(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, time.Hour)
	userID := uuid.New()

	token, err := manager.GenerateRefreshToken(userID)
	require.NoError(t, err)

	got, err := manager.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestDecodeClaimsUnverified(t *testing.T) {
	manager := NewJWTManager("any-secret", time.Hour, time.Hour)
	token, err := manager.GenerateAccessToken(uuid.New(), "vendor@apex.test", "VENDOR")
	require.NoError(t, err)

	claims, err := DecodeClaimsUnverified(token)
	require.NoError(t, err)
	assert.Equal(t, "VENDOR", claims.Role)
	assert.Equal(t, "vendor@apex.test", claims.Email)

	_, err = DecodeClaimsUnverified("not-a-token")
	assert.Error(t, err)
}
