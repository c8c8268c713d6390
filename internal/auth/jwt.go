package auth

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/quizgenius/quizgenius/internal/config"
)

var jwtSecret []byte

type Claims struct {
	Subject string `json:"sub"`
	jwt.RegisteredClaims
}

type contextKey string

const claimsKey contextKey = "authClaims"

// Init reads JWT_SECRET. When it is unset the API runs unauthenticated,
// which is the expected mode for a single-user local deployment.
func Init() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		config.Logger().Warn("JWT_SECRET not set, API authentication disabled")
		jwtSecret = nil
		return
	}
	jwtSecret = []byte(secret)
}

func Enabled() bool {
	return len(jwtSecret) > 0
}

func GenerateJWT(subject string, duration time.Duration) (string, error) {
	if !Enabled() {
		return "", errors.New("auth: JWT_SECRET not configured")
	}

	claims := Claims{
		Subject: subject,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

func ValidateJWT(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token is invalid")
	}
	return claims, nil
}

func GetClaimsFromContext(ctx context.Context) (*Claims, error) {
	claims, ok := ctx.Value(claimsKey).(*Claims)
	if !ok {
		return nil, errors.New("no claims in context")
	}
	return claims, nil
}
