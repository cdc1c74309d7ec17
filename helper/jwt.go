package helper

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"fiber/khayalethu/app/model"
	"fiber/khayalethu/config"
)

func GenerateToken(u model.AdminUser) (string, error) {
	claims := model.JWTClaims{
		UserID:   u.ID,
		Username: u.Username,
		Role:     model.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(12 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	secret := config.GetJWTSecret()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ValidateToken(tokenString string) (*model.JWTClaims, error) {
	secret := config.GetJWTSecret()
	token, err := jwt.ParseWithClaims(tokenString, &model.JWTClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*model.JWTClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrSignatureInvalid
}
