// internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/syrlramadhan/desa-tirongan-atas/internals/configs"
	"github.com/syrlramadhan/desa-tirongan-atas/internals/features/users/user/model"
)

// TokenTTL masa berlaku access token.
const TokenTTL = 24 * time.Hour

// GenerateToken menandatangani JWT HS256 berisi user_id + role.
func GenerateToken(user model.UserModel, now time.Time) (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("JWT_SECRET belum diset")
	}

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"iat":     now.Unix(),
		"exp":     now.Add(TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
