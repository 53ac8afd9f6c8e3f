package service_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcatalasan0/491-Project/internal/auth/service"
)

func TestTokenService_GenerateAndVerify(t *testing.T) {
	ts := service.NewTokenService("test-secret", 15)

	tokenString, err := ts.Generate("user-123", "test@example.com", "user")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := ts.Verify(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "test@example.com", claims.Email)
	assert.Equal(t, "user", claims.Role)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), claims.ExpiresAt.Time, time.Minute)
}

func TestTokenService_Verify_WrongSecret(t *testing.T) {
	ts := service.NewTokenService("test-secret", 15)
	other := service.NewTokenService("other-secret", 15)

	tokenString, err := ts.Generate("user-123", "test@example.com", "user")
	require.NoError(t, err)

	_, err = other.Verify(tokenString)
	assert.Error(t, err)
}

func TestTokenService_Verify_ExpiredToken(t *testing.T) {
	ts := service.NewTokenService("test-secret", 15)

	claims := service.JWTCustomClaims{
		UserID: "user-123",
		Email:  "test@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = ts.Verify(tokenString)
	assert.Error(t, err)
}

func TestTokenService_Verify_RejectsNonHMAC(t *testing.T) {
	ts := service.NewTokenService("test-secret", 15)

	// alg=none tokens must never validate.
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ts.Verify(tokenString)
	assert.Error(t, err)
}

func TestTokenService_Verify_Garbage(t *testing.T) {
	ts := service.NewTokenService("test-secret", 15)

	_, err := ts.Verify("not-a-token")
	assert.Error(t, err)
}

func TestTokenService_GetAccessTokenExpiry(t *testing.T) {
	ts := service.NewTokenService("test-secret", 30)
	assert.Equal(t, 30*time.Minute, ts.GetAccessTokenExpiry())
}
