package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func TestGenerateAndParseJWT(t *testing.T) {
	token, expiresAt, err := GenerateJWT("alice", testSecret, time.Hour, "shopbooks")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := ParseAndValidateJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, "shopbooks", claims.Issuer)
}

func TestParseAndValidateJWT_Rejects(t *testing.T) {
	token, _, err := GenerateJWT("alice", testSecret, time.Hour, "shopbooks")
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(token, "another-secret")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	expired, _, err := GenerateJWT("alice", testSecret, -time.Minute, "shopbooks")
	require.NoError(t, err)
	_, err = ParseAndValidateJWT(expired, testSecret)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	noSubject, _, err := GenerateJWT("", testSecret, time.Hour, "shopbooks")
	require.NoError(t, err)
	_, err = ParseAndValidateJWT(noSubject, testSecret)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidClaims)
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("secret1", hash))
	assert.False(t, CheckPasswordHash("secret2", hash))
}
