package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nareguabarber/naregua-api/internal/models"
)

const tokenTTL = 24 * time.Hour

func GenerateToken(barber *models.Barber, secret string) (string, error) {
	role := "barber"
	if barber.IsAdmin {
		role = "admin"
	}

	claims := jwt.MapClaims{
		"sub":  barber.ID,
		"name": barber.Name,
		"role": role,
		"exp":  time.Now().Add(tokenTTL).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
