package auth

import (
	"context"
	"errors"
	"fmt"

	"narration-server/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Claims are the token claims issued by the identity provider. The user id
// travels in the subject claim.
type Claims struct {
	jwt.RegisteredClaims
}

// UserID parses the subject claim as a UUID.
func (c *Claims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// JWTVerifier checks access tokens signed by the identity provider.
type JWTVerifier struct {
	jwtSecret string
	logger    *zap.Logger
}

// NewJWTVerifier creates a new JWTVerifier. A nil logger falls back to Noop.
func NewJWTVerifier(jwtSecret string, logger *zap.Logger) (*JWTVerifier, error) {
	if jwtSecret == "" {
		return nil, errors.New("JWT secret cannot be empty")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JWTVerifier{
		jwtSecret: jwtSecret,
		logger:    logger.Named("JWTVerifier"),
	}, nil
}

// VerifyToken checks the token signature and validity and returns the
// authenticated user id.
func (v *JWTVerifier) VerifyToken(ctx context.Context, tokenString string) (uuid.UUID, error) {
	log := v.logger.With(zap.String("tokenSnippet", tokenSnippet(tokenString)))
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			log.Warn("Unexpected signing method", zap.Any("alg", token.Header["alg"]))
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(v.jwtSecret), nil
	})

	if err != nil {
		log.Warn("Failed to parse or verify token", zap.Error(err))
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return uuid.Nil, models.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return uuid.Nil, models.ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return uuid.Nil, models.ErrTokenInvalid
		}
		return uuid.Nil, fmt.Errorf("%w: %v", models.ErrTokenInvalid, err)
	}

	if !token.Valid {
		log.Warn("Token is invalid despite no parsing error")
		return uuid.Nil, models.ErrTokenInvalid
	}

	userID, err := claims.UserID()
	if err != nil || userID == uuid.Nil {
		log.Warn("Token subject is not a valid user id", zap.String("subject", claims.Subject))
		return uuid.Nil, fmt.Errorf("%w: subject is not a user id", models.ErrTokenInvalid)
	}

	log.Debug("Token verified successfully", zap.String("userID", userID.String()))
	return userID, nil
}

// tokenSnippet returns a log-safe prefix of the token.
func tokenSnippet(tokenString string) string {
	limit := 15
	if len(tokenString) > limit {
		return tokenString[:limit] + "..."
	}
	return tokenString
}
