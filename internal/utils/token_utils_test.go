package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	token, expiresAt, err := GenerateJWT(TokenClaims{
		TokenType:        TokenTypeAccess,
		Username:         "alice",
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
	}, "secret", time.Minute, "videotube")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Minute), expiresAt, 2*time.Second)

	claims, err := ParseAndValidateJWT(token, "secret", TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "videotube", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestGenerateJWTIsUniquePerCall(t *testing.T) {
	claims := TokenClaims{TokenType: TokenTypeRefresh, RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"}}
	first, _, err := GenerateJWT(claims, "secret", time.Hour, "videotube")
	require.NoError(t, err)
	second, _, err := GenerateJWT(claims, "secret", time.Hour, "videotube")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestParseAndValidateJWTRejects(t *testing.T) {
	access, _, err := GenerateJWT(TokenClaims{TokenType: TokenTypeAccess, RegisteredClaims: jwt.RegisteredClaims{Subject: "u"}}, "secret", time.Minute, "videotube")
	require.NoError(t, err)
	expired, _, err := GenerateJWT(TokenClaims{TokenType: TokenTypeAccess, RegisteredClaims: jwt.RegisteredClaims{Subject: "u"}}, "secret", -time.Minute, "videotube")
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(access, "other-secret", TokenTypeAccess)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	_, err = ParseAndValidateJWT(access, "secret", TokenTypeRefresh)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidClaims)

	_, err = ParseAndValidateJWT(expired, "secret", TokenTypeAccess)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	_, err = ParseAndValidateJWT("garbage", "secret", TokenTypeAccess)
	assert.Error(t, err)
}
