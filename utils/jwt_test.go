package utils

import (
	"testing"
	"time"

	"guidely/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTripUsesConfiguredSecret(t *testing.T) {
	config.AppConfig.JWTSecret = "round-trip-secret"
	defer func() { config.AppConfig.JWTSecret = "" }()

	token, err := GenerateToken("admin-1", "admin", time.Hour)
	require.NoError(t, err)

	role, err := ExtractRoleFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", role)
}

func TestTokenSignedWithOtherSecretRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "first-secret"
	token, err := GenerateToken("admin-1", "admin", time.Hour)
	require.NoError(t, err)

	// Rotating the secret must invalidate previously issued tokens.
	config.AppConfig.JWTSecret = "second-secret"
	defer func() { config.AppConfig.JWTSecret = "" }()

	_, err = ExtractRoleFromToken(token)
	assert.Error(t, err)
}

func TestExpiredTokenRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "expiry-secret"
	defer func() { config.AppConfig.JWTSecret = "" }()

	token, err := GenerateToken("admin-1", "admin", -time.Minute)
	require.NoError(t, err)

	_, err = ExtractRoleFromToken(token)
	assert.Error(t, err)
}
