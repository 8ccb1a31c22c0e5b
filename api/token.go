package api

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// adminTokenTTL is how long an admin session token stays valid.
const adminTokenTTL = 24 * time.Hour

type adminClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// generateAdminToken mints an HS256 bearer token for the admin session.
func generateAdminToken(secret []byte, email string) (string, error) {
	claims := &adminClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(adminTokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// validateAdminToken parses and verifies a bearer token, returning its
// claims when valid.
func validateAdminToken(secret []byte, tokenString string) (*adminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &adminClaims{}, func(token *jwt.Token) (any, error) {
		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*adminClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
