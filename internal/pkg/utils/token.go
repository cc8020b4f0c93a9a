package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/ougirez/rifmis/internal/pkg/constants"
)

type AuthTokenWrapper struct {
	jwt.StandardClaims
	UserID string `json:"user_id"`
}

func GenerateAuthToken(secret string, userID string, ttl time.Duration) (string, error) {
	if userID == "" {
		return "", errors.New("empty user id")
	}

	now := time.Now()
	claims := AuthTokenWrapper{
		StandardClaims: jwt.StandardClaims{
			IssuedAt: now.Unix(),
			Subject:  userID,
		},
		UserID: userID,
	}
	// zero ttl means the token never expires
	if ttl != 0 {
		claims.ExpiresAt = now.Add(ttl).Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("token.SignedString: %w", err)
	}
	return signed, nil
}

func ParseAuthToken(secret string, tokenString string) (*AuthTokenWrapper, error) {
	claims := &AuthTokenWrapper{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, constants.ErrUnauthorized
	}
	if claims.UserID == "" {
		claims.UserID = claims.Subject
	}
	if claims.UserID == "" {
		return nil, constants.ErrUnauthorized
	}
	return claims, nil
}
