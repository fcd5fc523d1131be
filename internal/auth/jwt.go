package auth

import (
	"fmt"
	"os"

	"github.com/golang-jwt/jwt/v5"
)

// Fallback signing secret when JWT_SECRET is unset. Externalizing the secret
// fully (and adding expiry plus revocation) is a deployment follow-up; tokens
// issued here carry no exp claim and stay valid indefinitely.
const defaultSecret = "MY_SECRET_TOKEN"

var jwtSecret = defaultSecret

func InitJWTSecret() {
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		jwtSecret = secret
	}
}

func GenerateJWT(email string) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

// VerifyJWT checks the token's signature and returns the email it embeds.
func VerifyJWT(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})

	if err != nil || !token.Valid {
		return "", fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)

	if !ok {
		return "", fmt.Errorf("invalid token claims")
	}

	email, ok := claims["email"].(string)

	if !ok || email == "" {
		return "", fmt.Errorf("missing email in token claims")
	}

	return email, nil
}
