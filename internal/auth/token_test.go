package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freelancehub_backend/internal/config"
)

func setupTestConfig() {
	var cfg config.Config
	cfg.JWT.Secret = "unit-test-secret"
	cfg.JWT.TTL = 60
	config.AppConfig = &cfg
}

func TestGenerateAndParseToken(t *testing.T) {
	setupTestConfig()

	token, err := GenerateToken("user-123", "client")
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "client", claims.Role)
}

func TestParseTokenFallsBackToSubject(t *testing.T) {
	setupTestConfig()
	cfg := config.GetConfig()

	// Внешний IdP кладет идентификатор только в sub
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "idp-user-9"})
	signed, err := raw.SignedString([]byte(cfg.JWT.Secret))
	require.NoError(t, err)

	claims, err := ParseToken(signed)
	require.NoError(t, err)
	assert.Equal(t, "idp-user-9", claims.UserID)
}

func TestParseTokenBadSignature(t *testing.T) {
	setupTestConfig()

	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "x"})
	signed, err := raw.SignedString([]byte("wrong-secret"))
	require.NoError(t, err)

	_, err = ParseToken(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenGarbage(t *testing.T) {
	setupTestConfig()

	_, err := ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
