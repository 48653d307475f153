package session

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/barber-booking-web/internal/models"
)

type profileClaims struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	ProfileType string `json:"profile_type"`
	jwt.RegisteredClaims
}

// SignProfile grava o perfil mínimo do usuário num JWT HS256 (cookie "user").
func SignProfile(secret string, u models.User, ttl time.Duration, now time.Time) (string, error) {
	claims := profileClaims{
		Username:    u.Username,
		Email:       u.Email,
		ProfileType: u.ProfileType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(u.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func ParseProfile(secret, raw string) (*models.User, error) {
	var claims profileClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidCookie
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return nil, ErrInvalidCookie
	}
	if claims.ProfileType != models.ProfileBarber && claims.ProfileType != models.ProfileCustomer {
		return nil, ErrInvalidCookie
	}

	return &models.User{
		ID:          uint(id),
		Username:    claims.Username,
		Email:       claims.Email,
		ProfileType: claims.ProfileType,
	}, nil
}
