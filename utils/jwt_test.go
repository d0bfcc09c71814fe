package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestJWT_RoundTrip(t *testing.T) {
	tok, err := GenerateJWT(testSecret, "abc-123", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", claims.SessionID)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestJWT_Rejects(t *testing.T) {
	t.Run("wrong secret", func(t *testing.T) {
		tok, err := GenerateJWT(testSecret, "abc", time.Hour)
		require.NoError(t, err)
		_, err = ParseJWT("other", tok)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		tok, err := GenerateJWT(testSecret, "abc", -time.Minute)
		require.NoError(t, err)
		_, err = ParseJWT(testSecret, tok)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("no session id", func(t *testing.T) {
		tok, err := GenerateJWT(testSecret, "", time.Hour)
		require.NoError(t, err)
		_, err = ParseJWT(testSecret, tok)
		assert.ErrorIs(t, err, ErrMissingSession)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseJWT(testSecret, "not.a.token")
		assert.Error(t, err)
	})
}
