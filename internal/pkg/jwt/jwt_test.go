package jwt

import (
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/nishan-khiva/HRMS-project/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func TestGenerateAccessToken_Claims(t *testing.T) {
	svc := NewJWTService(testSecret, "1h")

	tokenString, expiresAt, err := svc.GenerateAccessToken("user-1", "hr@example.com", user.RoleHR)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, int64(0))

	token, err := jwtauth.VerifyToken(svc.JWTAuth(), tokenString)
	require.NoError(t, err)

	claims := token.PrivateClaims()
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "hr@example.com", claims["email"])
	assert.Equal(t, "hr", claims["role"])
	assert.Equal(t, "access", claims["type"])
}

func TestGenerateAccessToken_InvalidExpiration(t *testing.T) {
	svc := NewJWTService(testSecret, "not-a-duration")

	_, _, err := svc.GenerateAccessToken("user-1", "hr@example.com", user.RoleHR)
	assert.Error(t, err)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	svc := NewJWTService(testSecret, "1h")
	other := NewJWTService("a-different-secret", "1h")

	tokenString, _, err := svc.GenerateAccessToken("user-1", "hr@example.com", user.RoleHR)
	require.NoError(t, err)

	_, err = jwtauth.VerifyToken(other.JWTAuth(), tokenString)
	assert.Error(t, err)
}
