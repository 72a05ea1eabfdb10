package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type TokenConfig struct {
	Secret string
	TTL    time.Duration
}

// GenerateToken signs the HS256 token AuthMiddleware expects.
func GenerateToken(cfg TokenConfig, userID, role string, now time.Time) (string, time.Time, error) {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	expiresAt := now.Add(ttl)
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"iat":     now.Unix(),
		"exp":     expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.Secret))
	return signed, expiresAt, err
}
