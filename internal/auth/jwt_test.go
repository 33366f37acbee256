package auth

import (
	"testing"
	"time"

	"inkwell/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig(expiry time.Duration) *config.JWTConfig {
	return &config.JWTConfig{Secret: "test-secret", Expiry: expiry, Issuer: "inkwell-test"}
}

func TestTokenRoundTrip(t *testing.T) {
	cfg := testJWTConfig(time.Hour)

	token, err := GenerateToken(cfg, 7, "Jane Doe", "jane-doe")
	require.NoError(t, err)

	claims, err := ParseToken(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "Jane Doe", claims.Username)
	assert.Equal(t, "jane-doe", claims.Slug)
}

func TestParseToken_Expired(t *testing.T) {
	cfg := testJWTConfig(-time.Minute)

	token, err := GenerateToken(cfg, 1, "alice", "alice")
	require.NoError(t, err)

	_, err = ParseToken(cfg, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken(testJWTConfig(time.Hour), 1, "alice", "alice")
	require.NoError(t, err)

	other := &config.JWTConfig{Secret: "different", Expiry: time.Hour, Issuer: "inkwell-test"}
	_, err = ParseToken(other, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken(testJWTConfig(time.Hour), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
