package auth

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Tokens live 24 hours; there is no refresh flow, staff log in daily.
const tokenTTL = 24 * time.Hour

func generateToken(userID, role string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
