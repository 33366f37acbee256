package auth

import (
	"errors"
	"time"

	"inkwell/config"

	"github.com/golang-jwt/jwt/v5"
)

// Claims bind a token to one author identity with an explicit expiry,
// replacing the shared static secret the site historically used.
type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Slug     string `json:"slug"`
	jwt.RegisteredClaims
}

var ErrInvalidToken = errors.New("invalid token")

func GenerateToken(cfg *config.JWTConfig, userID uint, username, userSlug string) (string, error) {
	claims := Claims{
		UserID:   userID,
		Username: username,
		Slug:     userSlug,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(cfg.Expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    cfg.Issuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

func ParseToken(cfg *config.JWTConfig, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(cfg.Secret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
