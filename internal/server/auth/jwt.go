// Package auth reads the email claim from identity tokens issued by the
// campus identity provider. Tokens are HS256 JWTs signed with a shared secret.
package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/campusmatch/internal/common"
)

// Claims carries the registered claims plus the user's email.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// GenerateIdentityToken signs a token for email. The server never issues
// tokens itself; cmd/identitytoken uses this for local development.
func GenerateIdentityToken(email string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		Email: email,
	})

	return token.SignedString(secretKey)
}

// EmailFromToken verifies tokenString and returns its email claim.
// Any verification failure or a missing email yields common.ErrInvalidToken.
func EmailFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	email := strings.TrimSpace(claims.Email)
	if email == "" {
		return "", fmt.Errorf("%w: no email claim", common.ErrInvalidToken)
	}

	return email, nil
}
