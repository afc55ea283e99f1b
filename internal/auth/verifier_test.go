package auth

import (
	"context"
	"testing"
	"time"

	"narration-server/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "verifier-test-secret"

func signToken(t *testing.T, secret string, claims jwt.Claims, method jwt.SigningMethod) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestJWTVerifier_VerifyToken(t *testing.T) {
	ctx := context.Background()
	verifier, err := NewJWTVerifier(testSecret, zap.NewNop())
	require.NoError(t, err)

	t.Run("valid token yields user id", func(t *testing.T) {
		userID := uuid.New()
		token := signToken(t, testSecret, jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}, jwt.SigningMethodHS256)

		got, err := verifier.VerifyToken(ctx, token)

		require.NoError(t, err)
		assert.Equal(t, userID, got)
	})

	t.Run("expired token", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		}, jwt.SigningMethodHS256)

		_, err := verifier.VerifyToken(ctx, token)

		assert.ErrorIs(t, err, models.ErrTokenExpired)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token := signToken(t, "other-secret", jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}, jwt.SigningMethodHS256)

		_, err := verifier.VerifyToken(ctx, token)

		assert.ErrorIs(t, err, models.ErrTokenInvalid)
	})

	t.Run("garbage token is malformed", func(t *testing.T) {
		_, err := verifier.VerifyToken(ctx, "not.a.token")

		assert.ErrorIs(t, err, models.ErrTokenMalformed)
	})

	t.Run("subject must be a uuid", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.RegisteredClaims{
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}, jwt.SigningMethodHS256)

		_, err := verifier.VerifyToken(ctx, token)

		assert.ErrorIs(t, err, models.ErrTokenInvalid)
	})

	t.Run("empty secret is rejected at construction", func(t *testing.T) {
		_, err := NewJWTVerifier("", zap.NewNop())

		assert.Error(t, err)
	})
}
